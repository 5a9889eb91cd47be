// Copyright (c) 2026, WSO2 LLC. (https://www.wso2.com).
//
// WSO2 LLC. licenses this file to you under the Apache License,
// Version 2.0 (the "License"); you may not use this file except
// in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package storage

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"filippo.io/age"
	"filippo.io/age/armor"
)

// Sealer encrypts and decrypts data at rest.
type Sealer interface {
	Seal(plaintext []byte) ([]byte, error)
	Open(ciphertext []byte) ([]byte, error)
}

// AgeSealer seals data to a single age x25519 identity. The output is ASCII
// armored so sealed files stay printable.
type AgeSealer struct {
	identity *age.X25519Identity
}

var _ Sealer = (*AgeSealer)(nil)

// NewAgeSealer creates a sealer for identity.
func NewAgeSealer(identity *age.X25519Identity) (*AgeSealer, error) {
	if identity == nil {
		return nil, errors.New("age identity is nil")
	}
	return &AgeSealer{identity: identity}, nil
}

// Seal encrypts plaintext to the sealer's own recipient.
func (s *AgeSealer) Seal(plaintext []byte) ([]byte, error) {
	var buf bytes.Buffer
	armorWriter := armor.NewWriter(&buf)
	writer, err := age.Encrypt(armorWriter, s.identity.Recipient())
	if err != nil {
		return nil, fmt.Errorf("creating age encryptor: %w", err)
	}
	if _, err := writer.Write(plaintext); err != nil {
		return nil, fmt.Errorf("writing plaintext to age encryptor: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("finalizing age encryption: %w", err)
	}
	if err := armorWriter.Close(); err != nil {
		return nil, fmt.Errorf("finalizing armor: %w", err)
	}
	return buf.Bytes(), nil
}

// Open decrypts ciphertext produced by Seal.
func (s *AgeSealer) Open(ciphertext []byte) ([]byte, error) {
	reader, err := age.Decrypt(armor.NewReader(bytes.NewReader(ciphertext)), s.identity)
	if err != nil {
		return nil, fmt.Errorf("decrypting: %w", err)
	}
	plaintext, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading decrypted data: %w", err)
	}
	return plaintext, nil
}

// LoadOrCreateAgeIdentity reads the first x25519 identity from the key file
// at path. If the file does not exist a new identity is generated and written
// there with owner-only permissions, in the same layout age-keygen uses.
func LoadOrCreateAgeIdentity(path string) (*age.X25519Identity, error) {
	if path == "" {
		return nil, errors.New("age key file path is empty")
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return createAgeIdentity(path)
	}
	if err != nil {
		return nil, fmt.Errorf("open age key file: %w", err)
	}
	defer f.Close()

	identities, err := age.ParseIdentities(f)
	if err != nil {
		return nil, fmt.Errorf("parse age key file %s: %w", path, err)
	}
	for _, identity := range identities {
		if x25519, ok := identity.(*age.X25519Identity); ok {
			return x25519, nil
		}
	}
	return nil, fmt.Errorf("age key file %s holds no x25519 identity", path)
}

func createAgeIdentity(path string) (*age.X25519Identity, error) {
	identity, err := age.GenerateX25519Identity()
	if err != nil {
		return nil, fmt.Errorf("generating age identity: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create age key directory: %w", err)
	}
	content := fmt.Sprintf("# created: %s\n# public key: %s\n%s\n",
		time.Now().UTC().Format(time.RFC3339), identity.Recipient().String(), identity.String())
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return nil, fmt.Errorf("write age key file: %w", err)
	}
	return identity, nil
}
