package catalog

import "fmt"

// URL patterns of the hosting platform. Pages sites and repository home
// pages follow predictable addresses derived from the account and repo name.
const (
	pagesURLPattern  = "https://%s.github.io/%s/"
	repoURLPattern   = "https://github.com/%s/%s"
	ownerURLPattern  = "https://github.com/%s"
	avatarURLPattern = "https://github.com/%s.png"
)

// PagesURL returns the pages-hosting address for a repository.
func PagesURL(account, repo string) string {
	return fmt.Sprintf(pagesURLPattern, account, repo)
}

// RepoURL returns the canonical repository home page.
func RepoURL(account, repo string) string {
	return fmt.Sprintf(repoURLPattern, account, repo)
}

// OwnerURL returns the account profile page.
func OwnerURL(account string) string {
	return fmt.Sprintf(ownerURLPattern, account)
}

// AvatarURL returns the account avatar image address.
func AvatarURL(account string) string {
	return fmt.Sprintf(avatarURLPattern, account)
}

// FallbackProfile synthesizes a profile from the account name alone, used
// when the repository source is unreachable.
func FallbackProfile(account string) Profile {
	return Profile{
		Username:   account,
		AvatarURL:  AvatarURL(account),
		ProfileURL: OwnerURL(account),
	}
}
