package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPayload(t *testing.T) {
	cases := []struct {
		name   string
		schema string
		body   string
		ok     bool
	}{
		{"voice ok", VoiceUpload, `{"base64":"AAAA"}`, true},
		{"voice empty payload ok", VoiceUpload, `{"base64":""}`, true},
		{"voice missing field", VoiceUpload, `{}`, false},
		{"voice wrong type", VoiceUpload, `{"base64":12}`, false},
		{"voice extra field", VoiceUpload, `{"base64":"AA==","ext":"wav"}`, false},
		{"image with ext", ImageUpload, `{"base64":"AA==","ext":"JPG"}`, true},
		{"image null ext", ImageUpload, `{"base64":"AA==","ext":null}`, true},
		{"image no ext", ImageUpload, `{"base64":"AA=="}`, true},
		{"image bad ext", ImageUpload, `{"base64":"AA==","ext":3}`, false},
		{"not json", ImageUpload, `{`, false},
		{"unknown schema", "nope", `{}`, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Payload(tc.schema, []byte(tc.body))
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
