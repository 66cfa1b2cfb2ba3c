package keypair

var (
	DefaultProviders *Providers
)

func init() {
	// register providers
	DefaultProviders = NewProviders()
	_ = DefaultProviders.Register(NewNative())
	_ = DefaultProviders.SetDefault(NewNative().Name())
}
