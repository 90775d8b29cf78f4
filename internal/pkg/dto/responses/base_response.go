package responses

type ResponseDTO struct {
	Success  bool        `json:"success"`
	Message  string      `json:"message,omitempty"`
	Severity string      `json:"severity,omitempty"`
	Data     interface{} `json:"data,omitempty"`
}
