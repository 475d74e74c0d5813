package scancode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable_Alignment(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(SCAN_CODE_NUM, len(Table))
	assert.Equal("A", Table[0].Label)
	assert.Equal("0", Table[26].Label)
	assert.Equal("BKSP", Table[40].Label)
	assert.Equal("ENTER", Table[53].Label)
	assert.Equal("F1", Table[55].Label)
	assert.Equal("[", Table[68].Label)
	assert.Equal("NUM", Table[79].Label)
	assert.Equal("/", Table[SCAN_CODE_NUM-1].Label)
}

func TestTable_EveryKeyHasACode(t *testing.T) {
	for _, entry := range Table {
		assert.True(t, entry.Make != 0 || entry.Extended != 0, entry.Label)
		assert.NotEmpty(t, entry.Label)
	}
}

func TestTable_CodesDistinct(t *testing.T) {
	assert := assert.New(t)

	single := map[byte]string{}
	extended := map[byte]string{}
	for _, entry := range Table {
		if entry.Make != 0 {
			other, dup := single[entry.Make]
			assert.False(dup, "%v and %v", other, entry.Label)
			single[entry.Make] = entry.Label
		}
		if entry.Extended != 0 {
			other, dup := extended[entry.Extended]
			assert.False(dup, "%v and %v", other, entry.Label)
			extended[entry.Extended] = entry.Label
		}
	}
}

func TestTable_NoPrefixCodes(t *testing.T) {
	for _, entry := range Table {
		assert.False(t, IsPrefix(entry.Make), entry.Label)
		assert.False(t, IsPrefix(entry.Extended), entry.Label)
	}
}

func TestSingleIndex(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		Code  byte
		Label string
	}{
		{Code: 0x1C, Label: "A"},
		{Code: 0x5A, Label: "ENTER"},
		{Code: 0x11, Label: "L ALT"},
		{Code: 0x83, Label: "F7"},
		{Code: 0x4A, Label: "/"},
		{Code: 0x70, Label: "KP 0"},
	}

	for _, tc := range table {
		index := SingleIndex(tc.Code)
		assert.Equal(tc.Label, Label(index), "0x%02x", tc.Code)
	}
}

func TestExtendedIndex(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		Code  byte
		Label string
	}{
		{Code: 0x11, Label: "R ALT"},
		{Code: 0x14, Label: "R CTRL"},
		{Code: 0x5A, Label: "KP ENTER"},
		{Code: 0x4A, Label: "KP /"},
		{Code: 0x75, Label: "U ARROW"},
	}

	for _, tc := range table {
		index := ExtendedIndex(tc.Code)
		assert.Equal(tc.Label, Label(index), "0x%02x", tc.Code)
	}
}

func TestIndex_Miss(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(SCAN_CODE_NUM, SingleIndex(0x00))
	assert.Equal(SCAN_CODE_NUM, SingleIndex(0xFF))
	assert.Equal(SCAN_CODE_NUM, SingleIndex(PREFIX_BREAK))
	assert.Equal(SCAN_CODE_NUM, ExtendedIndex(0x00))
	assert.Equal(SCAN_CODE_NUM, ExtendedIndex(0x1C))

	assert.Equal("", Label(SCAN_CODE_NUM))
	assert.Equal("", Label(-1))
	assert.False(IsAscii(SCAN_CODE_NUM))
	assert.Equal(byte(0), Ascii(SCAN_CODE_NUM))
}

func TestIndex_Exhaustive(t *testing.T) {
	for code := range 256 {
		index := SingleIndex(byte(code))
		if index != SCAN_CODE_NUM {
			assert.Equal(t, byte(code), Table[index].Make)
		}
		index = ExtendedIndex(byte(code))
		if index != SCAN_CODE_NUM {
			assert.Equal(t, byte(code), Table[index].Extended)
		}
	}
}

func TestIsAscii(t *testing.T) {
	assert := assert.New(t)

	for n, entry := range Table {
		assert.Equal(entry.Ascii != 0, IsAscii(n), entry.Label)
	}

	idx, _ := Find("L SHFT")
	assert.False(IsAscii(idx))
	idx, _ = Find("\\")
	assert.True(IsAscii(idx))
	assert.Equal(byte('\\'), Ascii(idx))
}

func TestFind(t *testing.T) {
	assert := assert.New(t)

	index, ok := Find("R ALT")
	assert.True(ok)
	assert.Equal(byte(0x11), Table[index].Extended)

	index, ok = Find("NOPE")
	assert.False(ok)
	assert.Equal(SCAN_CODE_NUM, index)
}

func TestForAscii(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		Ascii byte
		Label string
	}{
		{Ascii: 'A', Label: "A"},
		{Ascii: '7', Label: "7"},
		{Ascii: '/', Label: "/"},
		{Ascii: '*', Label: "KP *"},
		{Ascii: '\n', Label: "ENTER"},
		{Ascii: 0x7f, Label: "DELETE"},
	}

	for _, tc := range table {
		index, ok := ForAscii(tc.Ascii)
		assert.True(ok, "0x%02x", tc.Ascii)
		assert.Equal(tc.Label, Label(index))
	}

	_, ok := ForAscii('~')
	assert.False(ok)
	_, ok = ForAscii(0)
	assert.False(ok)
}

func TestDefines(t *testing.T) {
	assert := assert.New(t)

	defines := map[string]string{}
	for key, value := range Defines() {
		defines[key] = value
	}

	assert.Equal("0xe0", defines["PREFIX_EXTENDED"])
	assert.Equal("0xf0", defines["PREFIX_BREAK"])
	assert.Equal("102", defines["SCAN_CODE_NUM"])
}

func TestTable_Backslash(t *testing.T) {
	assert := assert.New(t)

	index, ok := Find("\\")
	assert.True(ok)
	assert.Equal(byte('\\'), Ascii(index))
	assert.True(IsAscii(index))
	assert.Equal(index, SingleIndex(0x5D))
}
