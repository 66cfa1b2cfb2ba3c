package keypair

import (
	"sync"
)

// Providers keeps the registered ed25519 backends; the default one backs
// every KeyPair constructed without an explicit Provider.
type Providers struct {
	sync.RWMutex
	providers   map[string]Provider
	defaultName string
}

func NewProviders() *Providers {
	return &Providers{
		providers: map[string]Provider{},
	}
}

func (p *Providers) Register(provider Provider) error {
	p.Lock()
	defer p.Unlock()

	// check duplication
	for name := range p.providers {
		if name == provider.Name() {
			return ProviderAlreadyRegisteredError.Newf("name=%q", name)
		}
	}

	p.providers[provider.Name()] = provider

	if len(p.defaultName) < 1 {
		p.defaultName = provider.Name()
	}

	return nil
}

func (p *Providers) SetDefault(name string) error {
	provider, err := p.Provider(name)
	if err != nil {
		return err
	}

	p.Lock()
	defer p.Unlock()

	p.defaultName = provider.Name()

	return nil
}

func (p *Providers) Provider(name string) (Provider, error) {
	p.RLock()
	defer p.RUnlock()

	provider, found := p.providers[name]
	if !found {
		return nil, ProviderNotRegisteredError.Newf("name=%q", name)
	}

	return provider, nil
}

func (p *Providers) Default() (Provider, error) {
	p.RLock()
	defer p.RUnlock()

	provider, found := p.providers[p.defaultName]
	if !found {
		return nil, ProviderNotRegisteredError.Newf("no default provider")
	}

	return provider, nil
}
