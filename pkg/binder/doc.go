// Package binder binds HTTP request data to typed request structs.
//
// Two binders are provided:
//
//   - JSON(): strict JSON bodies (unknown fields and trailing data rejected,
//     1MB limit). Bodyless requests report ErrBinderNotApplicable.
//   - Path(extractor): URL path parameters through a router-specific
//     extractor such as chi.URLParam, using `path:"name"` tags.
//
// Binders are plain functions and compose through handler.WithBinders:
//
//	type createProductRequest struct {
//		StoreID    string `json:"-" path:"storeID"`
//		Name       string `json:"name"`
//		PriceCents int64  `json:"price_cents"`
//	}
//
//	r.Post("/stores/{storeID}/products", handler.Wrap(createProduct,
//		handler.WithBinders[handler.Context, createProductRequest](
//			binder.Path(chi.URLParam),
//			binder.JSON(),
//		),
//	))
//
// Errors wrap ErrUnsupportedMediaType, ErrMissingContentType,
// ErrFailedToParseJSON or ErrFailedToParsePath.
package binder
