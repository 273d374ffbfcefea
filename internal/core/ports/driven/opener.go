package driven

// URLOpener hands a URL (http or mailto) to the platform's default handler.
type URLOpener interface {
	Open(url string) error
}
