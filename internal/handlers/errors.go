package handlers

import "errors"

var (
	errInvalidID     = errors.New("invalid id")
	errGuideNotFound = errors.New("Guide not found")
	errNotGuideOwner = errors.New("Not authorized to modify this guide")
)
