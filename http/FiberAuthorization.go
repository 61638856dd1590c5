/*
 *
 *    Licensed under the Apache License, Version 2.0 (the "License");
 *    you may not use this file except in compliance with the License.
 *    You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 *    Unless required by applicable law or agreed to in writing, software
 *    distributed under the License is distributed on an "AS IS" BASIS,
 *    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *    See the License for the specific language governing permissions and
 *    limitations under the License.
 */

package http

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/keyauth/v2"
)

const credentialFormatHint = "Credentials should have format <alias>:<secret>, where secret must be prehashed with SHA256. " +
	"Recommended method is to generate a secret with openssl, like `openssl rand -hex 32`, then hash it with sha256sum"

// PrepareAuthorizationKeys parses <alias>:<sha256 hex> credential pairs into
// the digest table the validator compares against. Secrets are never held in
// clear, only their hashes.
func PrepareAuthorizationKeys(authorizationKeys []string) (map[string][]byte, error) {
	keys := make(map[string][]byte)

	for index, access := range authorizationKeys {
		alias, digest, err := parseCredential(access)
		if err != nil {
			return nil, fmt.Errorf("failed to parse access credentials at index %d. %s", index, credentialFormatHint)
		}

		keys[alias] = digest
	}

	return keys, nil
}

func parseCredential(access string) (alias string, digest []byte, err error) {
	const accessKeyParts = 2

	parts := strings.Split(access, ":")
	if len(parts) != accessKeyParts {
		return "", nil, fmt.Errorf("credential is not an <alias>:<secret> pair")
	}

	const sha256ExpectedOutputSize = 64
	if len(parts[1]) != sha256ExpectedOutputSize {
		return "", nil, fmt.Errorf("secret is not a SHA256 hex digest")
	}

	decodedValue, err := hex.DecodeString(parts[1])
	if err != nil {
		return "", nil, fmt.Errorf("secret is not valid hex. %w", err)
	}

	return parts[0], decodedValue, nil
}

// FiberAuthFilter exempts everything outside the versioned API and the
// profiler from authentication, notably healthchecks and metrics.
func FiberAuthFilter(ctx *fiber.Ctx) bool {
	return !strings.HasPrefix(ctx.OriginalURL(), currentVersion) &&
		!strings.HasPrefix(ctx.OriginalURL(), debugPath)
}

func FiberAuthValidator(authorizationKeys map[string][]byte) func(c *fiber.Ctx, key string) (bool, error) {
	return func(c *fiber.Ctx, key string) (bool, error) {
		const equalContents = 1

		hashedKey := sha256.Sum256([]byte(key))

		for user, digest := range authorizationKeys {
			if subtle.ConstantTimeCompare(hashedKey[:], digest) == equalContents {
				c.Locals("user", user)
				return true, nil
			}
		}

		return false, keyauth.ErrMissingOrMalformedAPIKey
	}
}
