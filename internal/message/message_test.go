package message

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T, fn func()) string {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetNoColor(true)
	t.Cleanup(func() {
		SetOutput(os.Stdout)
		SetQuiet(false)
		SetSilent(false)
	})
	fn()
	return buf.String()
}

func TestQuietSuppressesInfoButNotWarnings(t *testing.T) {
	out := capture(t, func() {
		SetQuiet(true)
		Info("listing mailboxes")
		Success("done")
		Warning("lookup failed for %s", "alice@contoso.com")
	})

	assert.NotContains(t, out, "listing mailboxes")
	assert.NotContains(t, out, "done")
	assert.Contains(t, out, "[!] lookup failed for alice@contoso.com")
}

func TestSilentSuppressesEverything(t *testing.T) {
	out := capture(t, func() {
		SetSilent(true)
		Info("one")
		Warning("two")
		Error("three")
		Banner()
	})

	assert.Empty(t, out)
}

func TestSectionFormatsHeader(t *testing.T) {
	out := capture(t, func() {
		Section("entra/recon/users-list")
	})

	assert.Contains(t, out, "-=[entra/recon/users-list]=-")
}
