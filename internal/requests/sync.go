package requests

// CompareRequest carries the client's local file names for reconciliation.
// An empty list is valid: it asks for the full remote corpus.
type CompareRequest struct {
	LocalFiles []string `json:"localFiles"`
}
