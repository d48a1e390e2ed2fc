package storefront

import (
	"net/http"

	"github.com/dmitrymomot/storekit/handler"
	"github.com/dmitrymomot/storekit/svc/catalog"
)

type productPath struct {
	ProductID string `path:"productID"`
}

type createProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents"`
	Currency    string `json:"currency"`
}

func (a *api) listProducts(ctx handler.Context, _ struct{}) handler.Response {
	_, sc := scope(ctx)
	items, err := a.catalog.List(ctx, sc)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(items, handler.WithJSONMeta(map[string]any{"count": len(items)}))
}

func (a *api) createProduct(ctx handler.Context, req createProductRequest) handler.Response {
	p, sc := scope(ctx)
	product, err := a.catalog.Create(ctx, p, sc, catalog.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		Currency:    req.Currency,
	})
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(product, handler.WithJSONStatus(http.StatusCreated))
}

func (a *api) getProduct(ctx handler.Context, req productPath) handler.Response {
	_, sc := scope(ctx)
	product, err := a.catalog.Get(ctx, sc, req.ProductID)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(product)
}

func (a *api) deleteProduct(ctx handler.Context, req productPath) handler.Response {
	p, sc := scope(ctx)
	if err := a.catalog.Delete(ctx, p, sc, req.ProductID); err != nil {
		return handler.Error(err)
	}
	return handler.Empty()
}
