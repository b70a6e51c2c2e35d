// Package clientip resolves the address of the client behind an HTTP request.
//
// Proxy headers are only consulted when the service is told it runs behind a
// proxy that sets them; otherwise anyone could spoof the logged address.
// With trust enabled the lookup order is CF-Connecting-IP, the first valid
// entry of X-Forwarded-For, X-Real-IP and finally RemoteAddr.
//
// Middleware stores the result in the request context and LoggerExtractor
// adds it to every record logged with that context:
//
//	r.Use(clientip.Middleware(cfg.TrustProxy))
//	log := logger.New(logger.WithContextExtractors(clientip.LoggerExtractor()))
package clientip
