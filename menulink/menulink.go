// Package menulink owns the public side of a menu: the opaque link id a
// customer uses to find it, the URL that id lives at, and the QR code that
// encodes the URL.
package menulink

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// LinkIDBytes is how much entropy goes into a link id. 12 random bytes
// hex-encode to 24 characters, 96 bits — enough that guessing a live menu
// link is infeasible.
const LinkIDBytes = 12

// LinkIDLength is the encoded length of a link id.
const LinkIDLength = LinkIDBytes * 2

// NewLinkID returns a fresh random link id: lowercase hex, URL-safe.
func NewLinkID() (string, error) {
	buf := make([]byte, LinkIDBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate link id: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// GenerateUnique keeps drawing ids until taken reports one as free.
// Collisions are practically impossible at 96 bits, but uniqueness is a
// contract of the store, not of statistics, so every candidate is checked.
func GenerateUnique(taken func(id string) (bool, error)) (string, error) {
	for {
		id, err := NewLinkID()
		if err != nil {
			return "", err
		}
		exists, err := taken(id)
		if err != nil {
			return "", err
		}
		if !exists {
			return id, nil
		}
	}
}

// MenuURL builds the fully-qualified public URL for a link id.
func MenuURL(baseURL, linkID string) string {
	return strings.TrimRight(baseURL, "/") + "/menu/" + linkID
}

// QRDataURI renders the public menu URL for linkID as a PNG QR code and
// returns it as a self-contained data URI. It is a pure transform: the id is
// not checked against any store, so an id for a deleted menu still renders a
// code that scans to a not-found page.
func QRDataURI(baseURL, linkID string) (string, error) {
	png, err := qrcode.Encode(MenuURL(baseURL, linkID), qrcode.Medium, 256)
	if err != nil {
		return "", fmt.Errorf("render qr code: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
