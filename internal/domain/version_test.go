package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	t.Run("Should parse a strict triple", func(t *testing.T) {
		version, err := ParseVersion("1.2.3")
		require.NoError(t, err)
		assert.Equal(t, uint64(1), version.Major())
		assert.Equal(t, uint64(2), version.Minor())
		assert.Equal(t, uint64(3), version.Patch())
		assert.Equal(t, "1.2.3", version.String())
	})
	t.Run("Should reject non-version text", func(t *testing.T) {
		for _, input := range []string{
			"invalid",
			"1.2",
			"1.2.3.4",
			"v1.2.3",
			"1.2.3-alpha",
			"1.2.3+build",
			" 1.2.3",
			"1.2.3 ",
			"-1.2.3",
			"",
		} {
			version, err := ParseVersion(input)
			assert.Error(t, err, "input %q", input)
			assert.Nil(t, version, "input %q", input)
		}
	})
	t.Run("Should round-trip any produced version", func(t *testing.T) {
		for _, input := range []string{"0.0.0", "1.2.3", "10.20.30"} {
			version, err := ParseVersion(input)
			require.NoError(t, err)
			again, err := ParseVersion(version.String())
			require.NoError(t, err)
			assert.Equal(t, 0, version.Compare(again))
		}
	})
}

func TestZeroVersion(t *testing.T) {
	t.Run("Should be 0.0.0", func(t *testing.T) {
		assert.Equal(t, "0.0.0", ZeroVersion().String())
	})
}

func TestVersion_Bump(t *testing.T) {
	t.Run("Should bump major and reset minor and patch", func(t *testing.T) {
		version, err := ParseVersion("1.5.8")
		require.NoError(t, err)
		assert.Equal(t, "2.0.0", version.BumpMajor().String())
	})
	t.Run("Should bump minor and reset patch", func(t *testing.T) {
		version, err := ParseVersion("1.2.5")
		require.NoError(t, err)
		assert.Equal(t, "1.3.0", version.BumpMinor().String())
	})
	t.Run("Should bump patch only", func(t *testing.T) {
		version, err := ParseVersion("2.5.0")
		require.NoError(t, err)
		assert.Equal(t, "2.5.1", version.BumpPatch().String())
	})
	t.Run("Should dispatch on increment class", func(t *testing.T) {
		version, err := ParseVersion("1.2.3")
		require.NoError(t, err)
		major, err := version.Bump(IncrementMajor)
		require.NoError(t, err)
		assert.Equal(t, "2.0.0", major.String())
		minor, err := version.Bump(IncrementMinor)
		require.NoError(t, err)
		assert.Equal(t, "1.3.0", minor.String())
		patch, err := version.Bump(IncrementPatch)
		require.NoError(t, err)
		assert.Equal(t, "1.2.4", patch.String())
	})
	t.Run("Should reject an unknown increment class", func(t *testing.T) {
		version, err := ParseVersion("1.2.3")
		require.NoError(t, err)
		bumped, err := version.Bump(IncrementClass("hotfix"))
		assert.Error(t, err)
		assert.Nil(t, bumped)
	})
	t.Run("Should not mutate the receiver", func(t *testing.T) {
		version, err := ParseVersion("1.2.3")
		require.NoError(t, err)
		_ = version.BumpMajor()
		assert.Equal(t, "1.2.3", version.String())
	})
}

func TestVersion_Compare(t *testing.T) {
	t.Run("Should be antisymmetric and reflexive", func(t *testing.T) {
		a, err := ParseVersion("1.2.3")
		require.NoError(t, err)
		b, err := ParseVersion("1.2.4")
		require.NoError(t, err)
		assert.Equal(t, -1, a.Compare(b))
		assert.Equal(t, 1, b.Compare(a))
		assert.Equal(t, 0, a.Compare(a))
	})
	t.Run("Should order major before minor before patch", func(t *testing.T) {
		ordered := []string{"0.0.0", "0.0.9", "0.9.0", "1.0.0", "1.0.1", "1.1.0", "2.0.0"}
		for i := 1; i < len(ordered); i++ {
			lower, err := ParseVersion(ordered[i-1])
			require.NoError(t, err)
			higher, err := ParseVersion(ordered[i])
			require.NoError(t, err)
			assert.Equal(t, -1, lower.Compare(higher), "%s < %s", ordered[i-1], ordered[i])
		}
	})
}

func TestParseIncrementClass(t *testing.T) {
	t.Run("Should accept the three classes case-insensitively", func(t *testing.T) {
		for input, expected := range map[string]IncrementClass{
			"major":  IncrementMajor,
			"Minor":  IncrementMinor,
			" patch": IncrementPatch,
		} {
			class, err := ParseIncrementClass(input)
			require.NoError(t, err)
			assert.Equal(t, expected, class)
		}
	})
	t.Run("Should reject anything else", func(t *testing.T) {
		_, err := ParseIncrementClass("hotfix")
		assert.Error(t, err)
	})
}
