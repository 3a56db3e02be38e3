package quote

import (
	"github.com/etnz/folio"
	"github.com/sirupsen/logrus"
)

// Chain is a folio.PriceLookup that asks each lookup in turn. The first one
// that knows the security wins. Nil lookups are ignored.
type Chain []folio.PriceLookup

// Quote implements folio.PriceLookup.
func (c Chain) Quote(symbol string, assetType folio.AssetType) (folio.Quote, bool) {
	for _, l := range c {
		if l == nil {
			continue
		}
		if q, ok := l.Quote(symbol, assetType); ok {
			return q, true
		}
	}
	log.WithFields(logrus.Fields{"symbol": symbol, "assetType": assetType.String()}).Debug("no quote")
	return folio.Quote{}, false
}
