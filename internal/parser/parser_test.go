package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vesta-budget/vesta/internal/classify"
	"github.com/vesta-budget/vesta/internal/common"
)

func newTestRegistry() *Registry {
	classifier := classify.NewClassifier()
	r := NewRegistry()
	r.Register(NewAlphaBankParser(classifier))
	r.Register(NewRaiffeisenParser(classifier))
	r.Register(NewSberbankParser(classifier, &staticExtractor{}))
	return r
}

func TestRegistry_Detect(t *testing.T) {
	r := newTestRegistry()

	tests := []struct {
		name     string
		filename string
		wantCode string
		wantErr  bool
	}{
		{name: "xlsx is alpha", filename: "statement.xlsx", wantCode: CodeAlpha},
		{name: "csv is raiffeisen", filename: "export.csv", wantCode: CodeRaiffeisen},
		{name: "pdf is sberbank", filename: "март.pdf", wantCode: CodeSberbank},
		{name: "case insensitive extension", filename: "STATEMENT.XLSX", wantCode: CodeAlpha},
		{name: "unknown extension", filename: "statement.txt", wantErr: true},
		{name: "no extension", filename: "statement", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := r.Detect(tt.filename)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, common.ErrUnsupportedBank)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, p.Bank().Code)
		})
	}
}

func TestRegistry_Get(t *testing.T) {
	r := newTestRegistry()

	p, err := r.Get("sberbank")
	require.NoError(t, err)
	assert.Equal(t, "Sberbank", p.Bank().Name)

	_, err = r.Get("monopoly")
	assert.ErrorIs(t, err, common.ErrUnsupportedBank)
}

func TestRegistry_Banks(t *testing.T) {
	banks := newTestRegistry().Banks()
	require.Len(t, banks, 3)

	assert.Equal(t, Bank{Name: "Alpha Bank", Code: "alpha", Extension: "xlsx"}, banks[0])
	assert.Equal(t, Bank{Name: "Raiffeisen Bank", Code: "raiffeisen", Extension: "csv"}, banks[1])
	assert.Equal(t, Bank{Name: "Sberbank", Code: "sberbank", Extension: "pdf"}, banks[2])
}
