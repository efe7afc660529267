package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeName normaliza um nome de setor para comparação: decompõe os
// caracteres, remove os acentos, converte para minúsculas e remove os espaços
// das bordas. "UTI Pediátrica" e "uti pediatrica" são considerados iguais.
func NormalizeName(name string) string {
	normalized, _, err := transform.String(stripAccents, name)
	if err != nil {
		// transform.String só falha com entradas fora do UTF-8 válido,
		// nesse caso comparamos o nome como veio
		normalized = name
	}
	return strings.ToLower(strings.TrimSpace(normalized))
}

// TruncateDate reduz qualquer campo de data ao prefixo YYYY-MM-DD de 10
// caracteres. A comparação lexicográfica de datas só é válida porque todas as
// datas passam por aqui antes.
func TruncateDate(date string) string {
	if len(date) > 10 {
		return date[:10]
	}
	return date
}
