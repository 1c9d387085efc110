package service

import "errors"

var (
	ErrRemoteUnavailable = errors.New("remote store unavailable")
	ErrListNotFound      = errors.New("shopping list not found")
	ErrMergeFailed       = errors.New("merge of local lists failed")
	ErrInvalidListID     = errors.New("invalid list id")
	ErrInvalidListName   = errors.New("invalid list name")
	ErrUnknownCollection = errors.New("unknown queue collection")
	ErrNotLocalKey       = errors.New("key is outside the local staging namespace")
	ErrInvalidDocument   = errors.New("document is not valid JSON")

	ErrFileNotFound            = errors.New("file not found")
	ErrInvalidPath             = errors.New("invalid file path")
	ErrInvalidDataProvided     = errors.New("invalid data provided")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrVersionIsNotSpecified   = errors.New("app version is not specified")
)
