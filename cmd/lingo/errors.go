package main

import "errors"

var errCatalogInvalid = errors.New("catalog contains malformed choice messages")
