package email

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// DevSender writes messages to disk instead of delivering them, so 2FA codes
// can be read during local development without a provider account.
type DevSender struct {
	dir string
}

// NewDevSender creates a development sender writing into dir. The directory
// is created on first send.
func NewDevSender(dir string) *DevSender {
	return &DevSender{dir: dir}
}

// Send implements Sender.
func (d *DevSender) Send(_ context.Context, to, subject, body string) error {
	if err := validateParams(to, subject); err != nil {
		return err
	}

	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToSend, err)
	}

	name := fmt.Sprintf("%s_%s.txt", time.Now().Format("2006_01_02_150405"), sanitizeFilename(subject))
	content := fmt.Sprintf("To: %s\nSubject: %s\n\n%s\n", to, subject, body)

	if err := os.WriteFile(filepath.Join(d.dir, name), []byte(content), 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToSend, err)
	}
	return nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = unsafeFilenameChars.ReplaceAllString(s, "")
	if len(s) > 100 {
		s = s[:100]
	}
	if s == "" {
		s = "email"
	}
	return strings.ToLower(s)
}
