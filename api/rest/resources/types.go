package resources

import "github.com/studypilot/server/studypilot/resources"

// ResourceResponse wraps a single saved resource
type ResourceResponse struct {
	Resource *resources.Resource `json:"resource"`
}

// ListResponse wraps a user's resource library
type ListResponse struct {
	Resources []resources.Resource `json:"resources"`
}
