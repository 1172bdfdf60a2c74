package cipher_test

import (
	"errors"
	"math"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"ciphertoy/internal/cipher"
	"ciphertoy/internal/domain"
)

// printable covers printable ASCII plus a few runes outside the shift band.
var printable = append(asciiRange(' ', '~'), '\n', '\t', 'é', '世')

var graphic = asciiRange('!', '~')

func asciiRange(lo, hi rune) []rune {
	var rs []rune
	for c := lo; c <= hi; c++ {
		rs = append(rs, c)
	}
	return rs
}

func genMessage() *rapid.Generator[string] {
	return rapid.StringOfN(rapid.RuneFrom(printable), 1, 120, -1)
}

func genASCIIKey() *rapid.Generator[string] {
	return rapid.StringOfN(rapid.RuneFrom(graphic), 1, 16, -1)
}

// genIntKey draws small keys in [-n, n] plus the extremes of int.
func genIntKey(n int) *rapid.Generator[int] {
	return rapid.OneOf(
		rapid.IntRange(-n, n),
		rapid.SampledFrom([]int{math.MaxInt, math.MaxInt - 1, math.MinInt + 1, math.MinInt}),
	)
}

func TestRoundTrip_DeterministicCiphers(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		msg := genMessage().Draw(t, "msg")
		kind := rapid.SampledFrom([]domain.Kind{
			domain.KindCaesar, domain.KindVigenere, domain.KindBeaufort,
			domain.KindAutokey, domain.KindAtbash, domain.KindROT13,
			domain.KindAffine, domain.KindRailfence, domain.KindPolybius,
			domain.KindSimpleSub, domain.KindColumnar, domain.KindBase64,
		}).Draw(t, "kind")

		var key domain.Key
		switch kind {
		case domain.KindCaesar:
			key = domain.ShiftKey(genIntKey(500).Draw(t, "shift"))
		case domain.KindAffine:
			a := rapid.SampledFrom([]int{
				1, 3, 5, 7, 9, 11, 15, 17, 19, 21, 23, 25, 27, -1,
				math.MaxInt, math.MaxInt - 2, math.MinInt + 1,
			}).Draw(t, "a")
			key = domain.AffineKey(a, genIntKey(60).Draw(t, "b"))
		case domain.KindRailfence:
			key = domain.ShiftKey(rapid.IntRange(1, len([]rune(msg))).Draw(t, "rails"))
		default:
			key = domain.TextKey(genASCIIKey().Draw(t, "key"))
		}

		ct, err := cipher.Apply(kind, msg, key, domain.Encrypt)
		if err != nil {
			t.Fatalf("encrypt %s: %v", kind, err)
		}
		pt, err := cipher.Apply(kind, ct, key, domain.Decrypt)
		if err != nil {
			t.Fatalf("decrypt %s: %v", kind, err)
		}
		if pt != msg {
			t.Fatalf("%s round trip: got %q, want %q (ct %q)", kind, pt, msg, ct)
		}
	})
}

func TestSelfInverse_AtbashROT13(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		msg := genMessage().Draw(t, "msg")
		if got := cipher.Atbash(cipher.Atbash(msg)); got != msg {
			t.Fatalf("atbash twice: %q != %q", got, msg)
		}
		if got := cipher.ROT13(cipher.ROT13(msg)); got != msg {
			t.Fatalf("rot13 twice: %q != %q", got, msg)
		}
	})
}

func TestBaconian_RecoversLetters(t *testing.T) {
	letters := []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ \n")
	rapid.Check(t, func(t *rapid.T) {
		msg := rapid.StringOfN(rapid.RuneFrom(letters), 1, 80, -1).Draw(t, "msg")
		seed := rapid.Uint64().Draw(t, "seed")
		rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

		ct, err := cipher.BaconianEncode(msg, rng.IntN)
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		pt, err := cipher.BaconianDecode(ct)
		if err != nil {
			t.Fatalf("decode %q: %v", ct, err)
		}
		if pt != strings.ToLower(msg) {
			t.Fatalf("got %q, want %q", pt, strings.ToLower(msg))
		}
	})
}

func TestBaconian_DigitRanges(t *testing.T) {
	ct, err := cipher.BaconianEncode("z", func(n int) int { return n - 1 })
	require.NoError(t, err)
	// z = 25 = 11001
	assert.Equal(t, "99669", ct)

	ct, err = cipher.BaconianEncode("z", func(int) int { return 0 })
	require.NoError(t, err)
	assert.Equal(t, "77007", ct)
}

func TestBaconian_Errors(t *testing.T) {
	_, err := cipher.BaconianDecode("0000x")
	assert.ErrorIs(t, err, domain.ErrMalformedInput)

	_, err = cipher.BaconianDecode("0000 0")
	assert.ErrorIs(t, err, domain.ErrMalformedInput, "partial group")

	_, err = cipher.BaconianDecode("99999")
	assert.ErrorIs(t, err, domain.ErrMalformedInput, "value above z")

	_, err = cipher.BaconianEncode("hi!", rand.IntN)
	assert.ErrorIs(t, err, domain.ErrMalformedInput)
}

func TestBaconian_EncryptIsRandomized(t *testing.T) {
	msg := strings.Repeat("attack at dawn ", 4)
	a, err := cipher.Apply(domain.KindBaconian, msg, domain.Key{}, domain.Encrypt)
	require.NoError(t, err)
	b, err := cipher.Apply(domain.KindBaconian, msg, domain.Key{}, domain.Encrypt)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestRailfence_ClassicExample(t *testing.T) {
	ct, err := cipher.Railfence("WEAREDISCOVEREDFLEEATONCE", 3, domain.Encrypt)
	require.NoError(t, err)
	assert.Equal(t, "WECRLTEERDSOEEFEAOCAIVDEN", ct)

	pt, err := cipher.Railfence(ct, 3, domain.Decrypt)
	require.NoError(t, err)
	assert.Equal(t, "WEAREDISCOVEREDFLEEATONCE", pt)
}

func TestRailfence_RailBounds(t *testing.T) {
	out, err := cipher.Railfence("hello", 1, domain.Encrypt)
	require.NoError(t, err)
	assert.Equal(t, "hello", out)

	for _, rails := range []int{0, -2, 6} {
		_, err := cipher.Railfence("hello", rails, domain.Encrypt)
		var ke *domain.KeyError
		require.ErrorAs(t, err, &ke, "rails=%d", rails)
		assert.Equal(t, "rails", ke.Param)
	}
}

func TestAffine_RejectsNonCoprimeMultiplier(t *testing.T) {
	for _, a := range []int{0, 2, 4, 6, 8, 10, 12, 13, 14, 16, 18, 20, 22, 24, 26} {
		for _, dir := range []domain.Direction{domain.Encrypt, domain.Decrypt} {
			_, err := cipher.Affine("hello", a, 3, dir)
			var ke *domain.KeyError
			if !errors.As(err, &ke) || ke.Param != "a" {
				t.Fatalf("a=%d %s: want key error on a, got %v", a, dir, err)
			}
			if !errors.Is(err, domain.ErrInvalidKey) {
				t.Fatalf("a=%d: error does not wrap ErrInvalidKey", a)
			}
		}
	}
}

func TestAffine_KnownVector(t *testing.T) {
	ct, err := cipher.Affine("AFFINE cipher", 5, 8, domain.Encrypt)
	require.NoError(t, err)
	assert.Equal(t, "IHHWVC swfrcp", ct)
}

func TestAffine_ExtremeKeysReduceModulo26(t *testing.T) {
	const msg = "AFFINE cipher 42"
	cases := []struct{ a, b, ra, rb int }{
		{5, math.MaxInt, 5, math.MaxInt % 26},
		{math.MaxInt - 2, 3, 5, 3},
		{math.MaxInt, math.MinInt, 7, 18},
		{math.MinInt + 1, math.MinInt + 1, 19, 19},
	}
	for _, tc := range cases {
		ct, err := cipher.Affine(msg, tc.a, tc.b, domain.Encrypt)
		require.NoError(t, err)
		want, err := cipher.Affine(msg, tc.ra, tc.rb, domain.Encrypt)
		require.NoError(t, err)
		assert.Equal(t, want, ct, "a=%d b=%d", tc.a, tc.b)

		pt, err := cipher.Affine(ct, tc.a, tc.b, domain.Decrypt)
		require.NoError(t, err)
		assert.Equal(t, msg, pt, "a=%d b=%d", tc.a, tc.b)
	}
}

func TestColumnar_KnownVector(t *testing.T) {
	ct, err := cipher.Columnar("WEAREDISCOVEREDFLEEATONCE", "ZEBRAS", domain.Encrypt)
	require.NoError(t, err)
	assert.Equal(t, "EVLNACDTESEAROFODEECWIREE", ct)
}

// Repeated key letters keep their left-to-right order: for "aba" the columns
// are read 0, 2, 1.
func TestColumnar_DuplicateKeyLettersAreStable(t *testing.T) {
	ct, err := cipher.Columnar("abcdef", "aba", domain.Encrypt)
	require.NoError(t, err)
	assert.Equal(t, "adcfbe", ct)

	pt, err := cipher.Columnar(ct, "aba", domain.Decrypt)
	require.NoError(t, err)
	assert.Equal(t, "abcdef", pt)
}

func TestCaesar_HelloWorld(t *testing.T) {
	assert.Equal(t, "mjqqt |twqi", cipher.Caesar("hello world", 5, domain.Encrypt))
	assert.Equal(t, "hello world", cipher.Caesar("mjqqt |twqi", 5, domain.Decrypt))
}

func TestCaesar_ExtremeShifts(t *testing.T) {
	const msg = "hello world ~0"
	for _, shift := range []int{math.MaxInt, math.MaxInt - 1, math.MinInt + 1, math.MinInt} {
		ct := cipher.Caesar(msg, shift, domain.Encrypt)
		assert.Equal(t, cipher.Caesar(msg, shift%79, domain.Encrypt), ct, "shift=%d", shift)
		assert.Equal(t, msg, cipher.Caesar(ct, shift, domain.Decrypt), "shift=%d", shift)
	}
}

func TestPolybius_RowBelow(t *testing.T) {
	assert.Equal(t, "Mjqqt, Ctwqi! z", cipher.Polybius("Hello, World! z", domain.Encrypt))
	assert.Equal(t, "Hello, World! z", cipher.Polybius("Mjqqt, Ctwqi! z", domain.Decrypt))
}

func TestKeyedVectors(t *testing.T) {
	cases := []struct {
		kind domain.Kind
		msg  string
		key  string
		want string
	}{
		{domain.KindVigenere, "attack at dawn", "lemon", "lx1opv m3 oe4|"},
		{domain.KindVigenere, "attack at dawn", "LEMON", "lx1opv m3 oe4|"},
		{domain.KindBeaufort, "attack at dawn", "lemon", "o:2loy n0 rv5y"},
		{domain.KindAutokey, "attack at dawn", "queen", "q9xepk tt naw2"},
	}
	for _, tc := range cases {
		got, err := cipher.Apply(tc.kind, tc.msg, domain.TextKey(tc.key), domain.Encrypt)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%s/%s", tc.kind, tc.key)
	}
}

func TestKeyedCiphers_RejectBadKeys(t *testing.T) {
	for _, kind := range []domain.Kind{
		domain.KindVigenere, domain.KindBeaufort, domain.KindAutokey,
		domain.KindSimpleSub, domain.KindColumnar,
	} {
		_, err := cipher.Apply(kind, "hello", domain.TextKey(""), domain.Encrypt)
		assert.ErrorIs(t, err, domain.ErrInvalidKey, kind.String())
	}
	_, err := cipher.Vigenere("hello", "clé", domain.Encrypt)
	assert.ErrorIs(t, err, domain.ErrInvalidKey)
	_, err = cipher.Autokey("hello", "clé", domain.Encrypt)
	assert.ErrorIs(t, err, domain.ErrInvalidKey)
}

func TestSimpleSub_PreservesCaseAndNonLetters(t *testing.T) {
	ct, err := cipher.SimpleSub("Hello, World 42", "letmein", domain.Encrypt)
	require.NoError(t, err)
	again, err := cipher.SimpleSub("Hello, World 42", "letmein", domain.Encrypt)
	require.NoError(t, err)
	assert.Equal(t, ct, again)
	assert.Equal(t, ", ", ct[5:7])
	assert.Equal(t, " 42", ct[12:])
	assert.True(t, ct[0] >= 'A' && ct[0] <= 'Z')
}

func TestSimpleSub_GoldenVector(t *testing.T) {
	ct, err := cipher.SimpleSub("hello world", "letmein", domain.Encrypt)
	require.NoError(t, err)
	assert.Equal(t, "zpbbr jrdbh", ct)

	ct, err = cipher.SimpleSub("Hello, World 42", "letmein", domain.Encrypt)
	require.NoError(t, err)
	assert.Equal(t, "Zpbbr, Jrdbh 42", ct)

	pt, err := cipher.SimpleSub(ct, "letmein", domain.Decrypt)
	require.NoError(t, err)
	assert.Equal(t, "Hello, World 42", pt)
}

func TestBase64(t *testing.T) {
	ct, err := cipher.Base64("hello world", domain.Encrypt)
	require.NoError(t, err)
	assert.Equal(t, "aGVsbG8gd29ybGQ=", ct)

	_, err = cipher.Base64("not base64!", domain.Decrypt)
	assert.ErrorIs(t, err, domain.ErrMalformedInput)
}

func TestApply_EmptyMessage(t *testing.T) {
	for _, kind := range domain.AllKinds() {
		_, err := cipher.Apply(kind, "", domain.TextKey("k"), domain.Encrypt)
		assert.ErrorIs(t, err, domain.ErrEmptyMessage, kind.String())
	}
}

func TestParseKey(t *testing.T) {
	k, err := cipher.ParseKey(domain.KindCaesar, " 5 ")
	require.NoError(t, err)
	assert.Equal(t, 5, k.N)

	k, err = cipher.ParseKey(domain.KindAffine, "5, 8")
	require.NoError(t, err)
	assert.Equal(t, domain.AffineKey(5, 8), k)

	_, err = cipher.ParseKey(domain.KindCaesar, "five")
	var ke *domain.KeyError
	require.ErrorAs(t, err, &ke)
	assert.Equal(t, "shift", ke.Param)

	_, err = cipher.ParseKey(domain.KindAffine, "5")
	require.ErrorAs(t, err, &ke)

	_, err = cipher.ParseKey(domain.KindAffine, "5,x")
	require.ErrorAs(t, err, &ke)
	assert.Equal(t, "b", ke.Param)

	k, err = cipher.ParseKey(domain.KindAtbash, "ignored")
	require.NoError(t, err)
	assert.Equal(t, domain.Key{}, k)
}

func TestDescribe_CoversEveryKind(t *testing.T) {
	for _, kind := range domain.AllKinds() {
		assert.NotEqual(t, "unknown cipher", cipher.Describe(kind), kind.String())
	}
}
