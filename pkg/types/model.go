package types

type VoiceUpload struct {
	Base64 string `json:"base64"`
}

type ImageUpload struct {
	Base64 string  `json:"base64"`
	Ext    *string `json:"ext,omitempty"` // sanitized; png when absent
}

type PathResp struct {
	Path string `json:"path"`
}

// VoiceResp is returned for reads; Base64 is null when Found is false.
type VoiceResp struct {
	ID     string  `json:"id"`
	Found  bool    `json:"found"`
	Base64 *string `json:"base64"`
}

type VoiceList struct {
	Voices []string `json:"voices"`
}

type ErrorResp struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}
