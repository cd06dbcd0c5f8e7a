package dto

// PublishResult is the resolved value of a publish run. Failure is signalled
// through Success=false with an empty URL, never through an error.
type PublishResult struct {
	URL      string `json:"url"`
	Provider string `json:"provider"`
	Success  bool   `json:"success"`
}
