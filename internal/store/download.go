package store

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

func (s *Store) VoiceURL(id string) string {
	return s.voiceBaseURL + "/" + url.PathEscape(id) + voiceExt
}

// DownloadVoice fetches {base}/{id}.wav and stores it as the voice's file.
// Any transport error or non-2xx status leaves the disk untouched.
func (s *Store) DownloadVoice(ctx context.Context, id string) (string, error) {
	const op = "download voice"
	if err := checkID(op, id); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.VoiceURL(id), nil)
	if err != nil {
		return "", newErr(KindNetworkFailed, op, id, err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return "", newErr(KindNetworkFailed, op, id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &Error{Kind: KindHTTPStatus, Op: op, ID: id, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", newErr(KindNetworkFailed, op, id, fmt.Errorf("read response: %w", err))
	}
	return s.write(op, id, s.VoicePath(id), body)
}
