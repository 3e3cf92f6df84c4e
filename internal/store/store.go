package store

import (
	"encoding/base64"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

const (
	DefaultVoiceBaseURL = "https://pub-6b92949063b142d59fc3478c56ec196c.r2.dev"

	voiceExt = ".wav"
)

// Roots resolves the two storage directories.
type Roots interface {
	VoicesRoot() string
	ImagesRoot() string
}

// Store reads and writes voice and personality image assets under Roots.
// It holds no file handles between calls.
type Store struct {
	roots        Roots
	client       *http.Client
	voiceBaseURL string
	log          *slog.Logger
}

type Option func(*Store)

// WithHTTPClient sets the client used by DownloadVoice. The default is
// http.DefaultClient, so no timeout is imposed beyond the client's own.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Store) {
		if c != nil {
			s.client = c
		}
	}
}

func WithVoiceBaseURL(u string) Option {
	return func(s *Store) {
		if u != "" {
			s.voiceBaseURL = strings.TrimRight(u, "/")
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

func New(roots Roots, opts ...Option) *Store {
	s := &Store{
		roots:        roots,
		client:       http.DefaultClient,
		voiceBaseURL: DefaultVoiceBaseURL,
		log:          slog.New(slog.DiscardHandler),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Store) VoicePath(id string) string {
	return filepath.Join(s.roots.VoicesRoot(), id+voiceExt)
}

func (s *Store) PersonalityImagePath(id, ext string) string {
	return filepath.Join(s.roots.ImagesRoot(), "personality_"+id+"."+ext)
}

// SaveVoiceWAVBase64 decodes payload and writes it as the voice's .wav file,
// replacing any previous content.
func (s *Store) SaveVoiceWAVBase64(id, payload string) (string, error) {
	const op = "save voice"
	if err := checkID(op, id); err != nil {
		return "", err
	}
	b, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", newErr(KindDecodeFailed, op, id, err)
	}
	return s.write(op, id, s.VoicePath(id), b)
}

// SavePersonalityImageBase64 decodes payload and writes it as
// personality_{id}.{ext}. ext may be nil; see SanitizeExt.
func (s *Store) SavePersonalityImageBase64(id, payload string, ext *string) (string, error) {
	const op = "save personality image"
	if err := checkID(op, id); err != nil {
		return "", err
	}
	b, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", newErr(KindDecodeFailed, op, id, err)
	}
	return s.write(op, id, s.PersonalityImagePath(id, SanitizeExt(ext)), b)
}

// ReadVoiceBase64 returns the voice file base64-encoded. ok is false, with a
// nil error, when no file exists for id.
func (s *Store) ReadVoiceBase64(id string) (encoded string, ok bool, err error) {
	const op = "read voice"
	if err := checkID(op, id); err != nil {
		return "", false, err
	}
	b, err := os.ReadFile(s.VoicePath(id))
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, newErr(KindIOFailed, op, id, err)
	}
	return base64.StdEncoding.EncodeToString(b), true, nil
}

// ListDownloadedVoices returns the ids of cached voices in byte order. A
// missing voices directory yields an empty list.
func (s *Store) ListDownloadedVoices() ([]string, error) {
	dir := s.roots.VoicesRoot()
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, newErr(KindIOFailed, "list voices", "", err)
	}

	ids := []string{}
	for _, e := range entries {
		name := e.Name()
		if !utf8.ValidString(name) || !strings.HasSuffix(name, voiceExt) {
			continue
		}
		// follow symlinks, skip anything that can't be stat'ed
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		if id := strings.TrimSuffix(name, voiceExt); id != "" {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

// write stages data in a temp file next to path and renames it into place.
func (s *Store) write(op, id, path string, data []byte) (string, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", newErr(KindIOFailed, op, id, err)
	}
	tmp := filepath.Join(dir, ".tmp-"+uuid.NewString())
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		_ = os.Remove(tmp)
		return "", newErr(KindIOFailed, op, id, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", newErr(KindIOFailed, op, id, err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	s.log.Info("asset written", "op", op, "id", id, "path", abs, "size", humanize.Bytes(uint64(len(data))))
	return abs, nil
}
