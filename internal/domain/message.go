package domain

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

const winMessageKey = "%s has won the World Cup %d times"

var winCatalog = newWinCatalog()

func newWinCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	err := b.Set(language.English, winMessageKey,
		plural.Selectf(2, "%d",
			"=1", "%s has won the World Cup %d time",
			plural.Other, "%s has won the World Cup %d times",
		))
	if err != nil {
		panic(err)
	}
	return b
}

// WinMessage renders the country readout, e.g. "Spain has won the World Cup 1 time".
func WinMessage(country string, wins int) string {
	p := message.NewPrinter(language.English, message.Catalog(winCatalog))
	return p.Sprintf(winMessageKey, country, wins)
}
