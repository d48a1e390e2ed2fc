package storefront

import (
	"net/http"

	"github.com/dmitrymomot/storekit/handler"
	"github.com/dmitrymomot/storekit/pkg/auth"
	"github.com/dmitrymomot/storekit/pkg/tenant"
	"github.com/dmitrymomot/storekit/svc/account"
)

type createStoreRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type updateStoreRequest struct {
	Name *string `json:"name"`
}

// scope returns the caller and the resolved store of the request. Either may
// be absent; the services reject what they cannot accept.
func scope(ctx handler.Context) (*auth.Principal, tenant.StoreContext) {
	p, _ := auth.PrincipalFromContext(ctx)
	sc, _ := tenant.FromContext(ctx)
	return p, sc
}

func (a *api) createStore(ctx handler.Context, req createStoreRequest) handler.Response {
	p, _ := auth.PrincipalFromContext(ctx)
	store, err := a.accounts.CreateStore(ctx, p, account.CreateStoreInput{Code: req.Code, Name: req.Name})
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(store, handler.WithJSONStatus(http.StatusCreated))
}

func (a *api) getStore(ctx handler.Context, _ struct{}) handler.Response {
	_, sc := scope(ctx)
	store, err := a.accounts.GetStore(ctx, sc)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(store)
}

func (a *api) updateStore(ctx handler.Context, req updateStoreRequest) handler.Response {
	p, sc := scope(ctx)
	store, err := a.accounts.UpdateStore(ctx, p, sc, account.UpdateStoreInput{Name: req.Name})
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(store)
}

func (a *api) deleteStore(ctx handler.Context, _ struct{}) handler.Response {
	p, sc := scope(ctx)
	if err := a.accounts.DeleteStore(ctx, p, sc); err != nil {
		return handler.Error(err)
	}
	return handler.Empty()
}

func (a *api) activateStore(ctx handler.Context, _ struct{}) handler.Response {
	p, sc := scope(ctx)
	owner, err := a.accounts.SetActiveStore(ctx, p, sc)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(owner)
}
