package handler

// errorResponse documents the error envelope emitted by the central error
// handler; it exists here for the swagger annotations.
type errorResponse struct {
	Error string `json:"error"`
}

// envelope is the single success envelope used by every endpoint group.
type envelope struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	// Source is set on the cached list read path: "cache" or "store".
	Source string `json:"source,omitempty"`
}
