package models

// HeaderRequestID is the HTTP header that carries the correlation id
// between the client, the gateway, and the resolver.
//
// The gateway sets it on the downstream call so the resolver echoes the
// gateway's id instead of minting its own; both tiers also set it on their
// responses so the id can be read without parsing the JSON body.
const HeaderRequestID = "X-Request-Id"

// QueryParamTimezone is the query parameter naming the symbolic timezone on
// GET /time requests of both tiers.
const QueryParamTimezone = "timezone"

// QueryParamRequestID is the query parameter the resolver accepts as a
// lower-precedence alternative to [HeaderRequestID], kept for compatibility
// with clients that cannot set headers.
const QueryParamRequestID = "request_id"
