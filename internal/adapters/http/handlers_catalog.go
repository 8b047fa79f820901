package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Cherry-CIC/Cherry-Backend/internal/contracts"
	"github.com/Cherry-CIC/Cherry-Backend/internal/domain"
)

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListProducts(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Products fetched successfully", products)
}

func (h *Handler) listProductDetails(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListProductDetails(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Products with details fetched successfully", products)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.service.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Product fetched successfully", product)
}

func (h *Handler) getProductDetails(w http.ResponseWriter, r *http.Request) {
	details, err := h.service.GetProductDetails(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Product with details fetched successfully", details)
}

func (h *Handler) listProductsByCategory(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListProductsByCategory(r.Context(), chi.URLParam(r, "categoryId"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Products fetched successfully", products)
}

func (h *Handler) listProductsByCharity(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListProductsByCharity(r.Context(), chi.URLParam(r, "charityId"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Products fetched successfully", products)
}

func (h *Handler) listMyProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListMyProducts(r.Context(), actorFromContext(r.Context()))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "User products fetched successfully", products)
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req contracts.ProductRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	product, err := h.service.CreateProduct(r.Context(), actorFromContext(r.Context()), domain.Product{
		Name:          req.Name,
		Description:   req.Description,
		CategoryID:    req.CategoryID,
		CharityID:     req.CharityID,
		Quality:       req.Quality,
		Size:          req.Size,
		ProductImages: req.ProductImages,
		Donation:      req.Donation,
		Price:         req.Price,
		Likes:         req.Likes,
		Number:        req.Number,
	})
	if err != nil {
		status, _ := mapDomainError(err)
		logHTTPOperationError(r.Context(), "create_product", status, err)
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, "Product created successfully", product)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	var update domain.ProductUpdate
	if err := decodeBody(r, &update); err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	product, err := h.service.UpdateProduct(r.Context(), actorFromContext(r.Context()), chi.URLParam(r, "id"), update)
	if err != nil {
		status, _ := mapDomainError(err)
		logHTTPOperationError(r.Context(), "update_product", status, err)
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Product updated successfully", product)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteProduct(r.Context(), actorFromContext(r.Context()), chi.URLParam(r, "id")); err != nil {
		status, _ := mapDomainError(err)
		logHTTPOperationError(r.Context(), "delete_product", status, err)
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Product deleted successfully", nil)
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Categories fetched successfully", categories)
}

func (h *Handler) getCategory(w http.ResponseWriter, r *http.Request) {
	category, err := h.service.GetCategory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Category fetched successfully", category)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var req contracts.CategoryRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	category, err := h.service.CreateCategory(r.Context(), actorFromContext(r.Context()), domain.Category{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		status, _ := mapDomainError(err)
		logHTTPOperationError(r.Context(), "create_category", status, err)
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, "Category created successfully", category)
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	var update domain.CategoryUpdate
	if err := decodeBody(r, &update); err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	category, err := h.service.UpdateCategory(r.Context(), actorFromContext(r.Context()), chi.URLParam(r, "id"), update)
	if err != nil {
		status, _ := mapDomainError(err)
		logHTTPOperationError(r.Context(), "update_category", status, err)
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Category updated successfully", category)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteCategory(r.Context(), actorFromContext(r.Context()), chi.URLParam(r, "id")); err != nil {
		status, _ := mapDomainError(err)
		logHTTPOperationError(r.Context(), "delete_category", status, err)
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Category deleted successfully", nil)
}

func (h *Handler) listCharities(w http.ResponseWriter, r *http.Request) {
	charities, err := h.service.ListCharities(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Charities fetched successfully", charities)
}

func (h *Handler) getCharity(w http.ResponseWriter, r *http.Request) {
	charity, err := h.service.GetCharity(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Charity fetched successfully", charity)
}

func (h *Handler) createCharity(w http.ResponseWriter, r *http.Request) {
	var req contracts.CharityRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	charity, err := h.service.CreateCharity(r.Context(), actorFromContext(r.Context()), domain.Charity{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Website:     req.Website,
	})
	if err != nil {
		status, _ := mapDomainError(err)
		logHTTPOperationError(r.Context(), "create_charity", status, err)
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, "Charity created successfully", charity)
}

func (h *Handler) updateCharity(w http.ResponseWriter, r *http.Request) {
	var update domain.CharityUpdate
	if err := decodeBody(r, &update); err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	charity, err := h.service.UpdateCharity(r.Context(), actorFromContext(r.Context()), chi.URLParam(r, "id"), update)
	if err != nil {
		status, _ := mapDomainError(err)
		logHTTPOperationError(r.Context(), "update_charity", status, err)
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Charity updated successfully", charity)
}

func (h *Handler) deleteCharity(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteCharity(r.Context(), actorFromContext(r.Context()), chi.URLParam(r, "id")); err != nil {
		status, _ := mapDomainError(err)
		logHTTPOperationError(r.Context(), "delete_charity", status, err)
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Charity deleted successfully", nil)
}
