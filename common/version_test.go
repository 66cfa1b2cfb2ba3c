package common

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"
)

type testVersion struct {
	suite.Suite
}

func (t *testVersion) TestEncodeDecode() {
	v, err := NewVersion("0.1.2-proto+findme")
	t.NoError(err)

	// encode
	b, err := json.Marshal(v)
	t.NoError(err)
	t.NotEmpty(b)

	// decode
	var nv Version
	err = json.Unmarshal(b, &nv)
	t.NoError(err)

	t.True(v.Equal(nv))
}

func (t *testVersion) TestCurrentVersion() {
	t.False(CurrentVersion.Equal(ZeroVersion))
	t.Equal(VersionString, CurrentVersion.String())
}

func TestVersion(t *testing.T) {
	suite.Run(t, new(testVersion))
}
