package ad

import (
	"fmt"
	"os"

	"github.com/go-ldap/ldap/v3"
)

// passwordEnvVar holds the bind password so it never appears in process
// listings or shell history.
const passwordEnvVar = "CUMULUS_LDAP_PASSWORD"

// Connect dials the directory server and binds with the given DN. The
// password comes from CUMULUS_LDAP_PASSWORD.
func Connect(ldapURL, bindDN string) (*ldap.Conn, error) {
	password := os.Getenv(passwordEnvVar)
	if password == "" {
		return nil, fmt.Errorf("%s is not set", passwordEnvVar)
	}

	conn, err := ldap.DialURL(ldapURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", ldapURL, err)
	}

	if err := conn.Bind(bindDN, password); err != nil {
		conn.Close()
		return nil, fmt.Errorf("bind as %s failed: %w", bindDN, err)
	}

	return conn, nil
}

// search runs a paged subtree search and returns all entries.
func search(conn *ldap.Conn, baseDN, filter string, attributes []string, pageSize int) ([]*ldap.Entry, error) {
	if pageSize <= 0 {
		pageSize = 1000
	}

	req := ldap.NewSearchRequest(
		baseDN,
		ldap.ScopeWholeSubtree,
		ldap.NeverDerefAliases,
		0, 0, false,
		filter,
		attributes,
		nil,
	)

	res, err := conn.SearchWithPaging(req, uint32(pageSize))
	if err != nil {
		return nil, fmt.Errorf("search under %s failed: %w", baseDN, err)
	}

	return res.Entries, nil
}
