package common

import (
	"crypto/rand"

	uuid "github.com/satori/go.uuid"
)

func RandomUUID() string {
	return uuid.NewV4().String()
}

func RandomBytes(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}

	return b
}
