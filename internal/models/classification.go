package models

import "errors"

// List types exposed by the API.
const (
	ListTypeWhitelist = "whitelist"
	ListTypeBlacklist = "blacklist"
	ListTypeGreylist  = "greylist"
)

// Classification error sentinels.
var (
	ErrUnknownListType  = errors.New("unknown list type code")
	ErrExcludedListType = errors.New("list type not exposed")
)

// rawListTypes names the stored users.type codes, indexed by code.
var rawListTypes = [...]string{
	"whitelist",
	"blacklist",
	"admin",
	"anon",
	"user",
	"bot",
	"greylist",
}

// simplifiedListTypes folds internal distinctions the API does not
// expose: admins and bots are just trusted entities to consumers.
var simplifiedListTypes = map[string]string{
	"admin": ListTypeWhitelist,
	"bot":   ListTypeWhitelist,
}

// exposedListTypes is the set of types the API reports. Anything else
// (anon, user) carries no signal and is excluded outright.
var exposedListTypes = map[string]bool{
	ListTypeWhitelist: true,
	ListTypeBlacklist: true,
	ListTypeGreylist:  true,
}

// ClassifyListType maps a raw users.type code to the exposed list type.
// Codes outside the table return ErrUnknownListType; codes that resolve
// to a type the API does not report return ErrExcludedListType.
func ClassifyListType(code int64) (string, error) {
	if code < 0 || code >= int64(len(rawListTypes)) {
		return "", ErrUnknownListType
	}

	name := rawListTypes[code]
	if folded, ok := simplifiedListTypes[name]; ok {
		name = folded
	}

	if !exposedListTypes[name] {
		return "", ErrExcludedListType
	}

	return name, nil
}
