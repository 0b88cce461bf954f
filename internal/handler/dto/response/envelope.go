package response

// Envelope is the uniform result shape every mutating action returns,
// mirroring the upstream API's own contract.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func Ok(message string, data any) Envelope {
	return Envelope{Success: true, Message: message, Data: data}
}

func Fail(message string) Envelope {
	return Envelope{Success: false, Message: message}
}

func FailWith(message string, data any) Envelope {
	return Envelope{Success: false, Message: message, Data: data}
}
