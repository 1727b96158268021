package utils

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReadIdentityFile reads one identity per line, skipping blanks and
// comment lines. A leading header line of "UserPrincipalName" or
// "Identity" is tolerated so exported CSVs can be fed back in directly.
func ReadIdentityFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open identity file: %w", err)
	}
	defer f.Close()

	var identities []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		// first CSV column only
		if idx := strings.Index(line, ","); idx >= 0 {
			line = strings.TrimSpace(line[:idx])
		}
		if strings.EqualFold(line, "UserPrincipalName") || strings.EqualFold(line, "Identity") {
			continue
		}
		identities = append(identities, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read identity file: %w", err)
	}

	return identities, nil
}
