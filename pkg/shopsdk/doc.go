/*
Package shopsdk provides a REST client for the Sweet Shop inventory backend.

# Overview

The Client wraps the backend's /api surface: authentication, catalog CRUD,
and inventory operations. Construct one with NewClient and wire its
TokenSource to whatever holds the current bearer token:

	client := shopsdk.NewClient("http://localhost:5000/api")
	client.TokenSource = session.Token

	sweets, err := client.ListSweets(ctx)

# Authentication

Login returns a bearer token which the caller is responsible for storing.
Every subsequent request picks the token up through TokenSource and sends it
as an Authorization: Bearer header. The client never inspects or refreshes
the token; there is no refresh token in this contract.

# Unauthorized responses

Any response with status 401 fires the OnUnauthorized hook before the
typed error is returned. Applications use the hook to discard the stored
credential and force the user back to the login view. The hook is global on
purpose: the backend only answers 401 for missing, expired, or invalid
tokens, so a 401 from any endpoint means the session is no longer usable.

# Errors

Failed requests return *APIError carrying the HTTP status and the
server-supplied message. Helpers IsUnauthorized, IsForbidden, and
ErrorMessage cover the common checks:

	if _, err := client.DeleteSweet(ctx, id); shopsdk.IsForbidden(err) {
		// not an admin
	}

Exactly one attempt is made per call; nothing is retried automatically.
*/
package shopsdk
