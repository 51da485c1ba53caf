// Command keygen prints a fresh master key and session token secret in the
// form expected by the server environment.
package main

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/dmitrijs2005/gophvault/internal/cryptox"
)

func main() {
	key, err := cryptox.GenerateMasterKey()
	if err != nil {
		fmt.Fprintf(os.Stderr, "keygen: %v\n", err)
		os.Exit(1)
	}

	secret := base64.StdEncoding.EncodeToString(common.GenerateRandByteArray(48))

	fmt.Printf("MASTER_KEY=%s\n", key)
	fmt.Printf("JWT_SECRET=%s\n", secret)
}
