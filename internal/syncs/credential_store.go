package syncs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"reading-stats/internal/shared/filestorages"

	"github.com/bytedance/sonic"
)

// Credentials are read from the token file: the device code on the first line and the access token
// on the second.
type Credentials struct {
	DeviceCode  string
	AccessToken string
}

// LoggedIn reports whether an access token is present.
func (c *Credentials) LoggedIn() bool {
	return c != nil && c.AccessToken != ""
}

// State is persisted after every successful sync.
type State struct {
	LastSync   int64  `json:"last_sync"`
	Nickname   string `json:"nickname"`
	DeviceName string `json:"device_name"`
}

//go:generate mockgen -source=credential_store.go -destination=./mocks/credential_store_mock.go -package=mocks
type CredentialStore interface {
	// LoadCredentials returns empty credentials when the token file is missing.
	LoadCredentials(ctx context.Context) (*Credentials, error)
	// LoadState returns the zero State when the state file is missing or unreadable.
	LoadState(ctx context.Context) *State
	SaveState(ctx context.Context, state *State) error
	// Clear removes the token and state files.
	Clear(ctx context.Context) error
}

type credentialStore struct {
	fileStorage filestorages.FileStorage
	tokenFile   string
	stateFile   string
}

func NewCredentialStore(fileStorage filestorages.FileStorage, tokenFile, stateFile string) CredentialStore {
	return &credentialStore{fileStorage: fileStorage, tokenFile: tokenFile, stateFile: stateFile}
}

func (s *credentialStore) LoadCredentials(ctx context.Context) (*Credentials, error) {
	content, err := s.read(ctx, s.tokenFile)
	if errors.Is(err, filestorages.ErrFileNotFound) {
		return &Credentials{}, nil
	}
	if err != nil {
		return nil, err
	}

	lines := strings.SplitN(string(content), "\n", 3)
	creds := &Credentials{DeviceCode: strings.TrimRight(lines[0], "\r")}
	if len(lines) > 1 {
		creds.AccessToken = strings.TrimRight(lines[1], "\r")
	}
	return creds, nil
}

func (s *credentialStore) LoadState(ctx context.Context) *State {
	state := &State{}
	content, err := s.read(ctx, s.stateFile)
	if err != nil {
		return state
	}
	if err := sonic.Unmarshal(content, state); err != nil {
		return &State{}
	}
	return state
}

func (s *credentialStore) SaveState(ctx context.Context, state *State) error {
	data, err := sonic.Marshal(state)
	if err != nil {
		return err
	}
	_, err = s.fileStorage.Put(ctx, s.stateFile, bytes.NewReader(data), filestorages.PutOptions{AllowOverwrite: true})
	return err
}

func (s *credentialStore) Clear(ctx context.Context) error {
	var errs []error
	for _, path := range []string{s.tokenFile, s.stateFile} {
		if err := s.fileStorage.Remove(ctx, path); err != nil && !errors.Is(err, filestorages.ErrFileNotFound) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *credentialStore) read(ctx context.Context, path string) ([]byte, error) {
	r, err := s.fileStorage.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

// LastSyncText renders the time since lastSync the way the status line shows it.
func LastSyncText(lastSync int64, now time.Time) string {
	if lastSync == 0 {
		return "never synced"
	}
	diff := now.Unix() - lastSync
	switch {
	case diff < 60:
		return "just now"
	case diff < 3600:
		return plural(diff/60, "minute") + " ago"
	case diff < 86400:
		return plural(diff/3600, "hour") + " ago"
	default:
		return plural(diff/86400, "day") + " ago"
	}
}

func plural(n int64, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
