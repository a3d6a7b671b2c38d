package httpapi

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/light-bringer/lumina-store/internal/app/catalog/usecases/update_product"
)

// maxImageBytes bounds product image uploads.
const maxImageBytes = 5 << 20

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// uploadImageHandler stores the uploaded image and points the product at it.
func (a *App) uploadImageHandler(w http.ResponseWriter, r *http.Request) {
	if a.Images == nil {
		WriteJSONError(w, http.StatusServiceUnavailable, "image_uploads_disabled", "no image bucket configured")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxImageBytes)
	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid_upload", err.Error())
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid_upload", "image file is required")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	ext, ok := imageExtensions[contentType]
	if !ok {
		WriteJSONError(w, http.StatusUnsupportedMediaType, "unsupported_image_type", "expected JPEG, PNG or WebP")
		return
	}

	productID := r.PathValue("id")
	objectName := "products/" + productID + "/" + uuid.NewString() + ext

	imageURL, err := a.Images.Upload(r.Context(), objectName, contentType, file)
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}

	err = a.UpdateProduct.Execute(r.Context(), &update_product.Request{
		ProductID: productID,
		ImageURL:  &imageURL,
	})
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"image_url": imageURL})
}
