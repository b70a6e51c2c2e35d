package formapi

import "errors"

var errCatalogMissing = errors.New("translation catalog has no messages for the default language")
