package periodic

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narasux/elements/pkg/model"
)

func TestValidate(t *testing.T) {
	assert.Equal(t, 118, Size())
	assert.NoError(t, Validate())
}

func TestByNumber(t *testing.T) {
	tests := []struct {
		n      int
		name   string
		symbol string
	}{
		{1, "Hidrógeno", "H"},
		{10, "Neón", "Ne"},
		{26, "Hierro", "Fe"},
		{50, "Estaño", "Sn"},
		{118, "Oganesón", "Og"},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			element, err := ByNumber(tt.n)
			require.NoError(t, err)
			assert.Equal(t, model.Element{AtomicNumber: tt.n, Name: tt.name, Symbol: tt.symbol}, element)
		})
	}
}

func TestByNumberNotFound(t *testing.T) {
	for _, n := range []int{0, 119, -1, 255} {
		_, err := ByNumber(n)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNotFound))

		var notFound *NotFoundError
		require.True(t, errors.As(err, &notFound))
		assert.Equal(t, model.ByAtomicNumber, notFound.Criterion)
	}

	_, err := ByNumber(119)
	assert.EqualError(t, err, "There is no chemical element with the atomic number 119.")
}

func TestByName(t *testing.T) {
	for _, name := range []string{"Hidrógeno", "hidrogeno", "HIDRÓGENO", "HIDROGENO", "hidrógeno"} {
		element, err := ByName(name)
		require.NoError(t, err, name)
		assert.Equal(t, 1, element.AtomicNumber)
		// 返回表中的规范名称，而非用户输入
		assert.Equal(t, "Hidrógeno", element.Name)
	}

	element, err := ByName("oganeson")
	require.NoError(t, err)
	assert.Equal(t, "Og", element.Symbol)

	element, err = ByName("estaño")
	require.NoError(t, err)
	assert.Equal(t, 50, element.AtomicNumber)
}

func TestByNameNotFound(t *testing.T) {
	_, err := ByName("Kryptonita")
	var notFound *NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, &NotFoundError{Criterion: model.ByName, Value: "Kryptonita"}, notFound)
	assert.EqualError(t, err, "There is no chemical element with the name Kryptonita.")

	// 英文名称不在表中
	_, err = ByName("Hydrogen")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestBySymbol(t *testing.T) {
	for _, symbol := range []string{"Ne", "ne", "NE", "nE"} {
		element, err := BySymbol(symbol)
		require.NoError(t, err, symbol)
		assert.Equal(t, model.Element{AtomicNumber: 10, Name: "Neón", Symbol: "Ne"}, element)
	}
}

func TestBySymbolNotFound(t *testing.T) {
	_, err := BySymbol("xx")
	var notFound *NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, &NotFoundError{Criterion: model.BySymbol, Value: "xx"}, notFound)
	assert.EqualError(t, err, "There is no chemical element with the symbol xx.")
}

func TestRoundTrip(t *testing.T) {
	for n := 1; n <= Size(); n++ {
		element, err := ByNumber(n)
		require.NoError(t, err)

		byName, err := ByName(element.Name)
		require.NoError(t, err)
		assert.Equal(t, n, byName.AtomicNumber)

		bySymbol, err := BySymbol(element.Symbol)
		require.NoError(t, err)
		assert.Equal(t, n, bySymbol.AtomicNumber)
	}
}

func TestAll(t *testing.T) {
	elements := All()
	require.Len(t, elements, 118)
	for idx, element := range elements {
		assert.Equal(t, idx+1, element.AtomicNumber)
	}
	assert.Equal(t, "H", elements[0].Symbol)
	assert.Equal(t, "Og", elements[117].Symbol)
}

func TestResolve(t *testing.T) {
	tests := []struct {
		query    model.Query
		expected int
	}{
		{model.Query{Criterion: model.ByAtomicNumber, AtomicNumber: 8}, 8},
		{model.Query{Criterion: model.ByName, Text: "oxigeno"}, 8},
		{model.Query{Criterion: model.BySymbol, Text: "o"}, 8},
	}
	for _, tt := range tests {
		t.Run(string(tt.query.Criterion), func(t *testing.T) {
			element, err := Resolve(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, element.AtomicNumber)
		})
	}

	_, err := Resolve(model.Query{Criterion: model.ByAtomicNumber, AtomicNumber: 0})
	assert.EqualError(t, err, "There is no chemical element with the atomic number 0.")

	_, err = Resolve(model.Query{Criterion: "color", Text: "red"})
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestValidateDetectsCorruptTable(t *testing.T) {
	tests := []struct {
		name   string
		idx    int
		entry  entry
		errMsg string
	}{
		{"duplicate symbol", 1, entry{"Helio", "h"}, "duplicate element symbol h"},
		{"duplicate name", 1, entry{"HIDROGENO", "He"}, "duplicate element name HIDROGENO"},
		{"empty symbol", 5, entry{"Carbono", ""}, "element 6 has empty name or symbol"},
		{"long symbol", 5, entry{"Carbono", "Cbn"}, "element 6 has invalid symbol Cbn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := table[tt.idx]
			defer func() { table[tt.idx] = original }()

			table[tt.idx] = tt.entry
			assert.ErrorContains(t, Validate(), tt.errMsg)
		})
	}
	assert.NoError(t, Validate())
}
