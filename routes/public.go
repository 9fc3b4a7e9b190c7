package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	contactController "github.com/robowebsolution/glory-home-eg-sub001/controllers/contact"
	customerController "github.com/robowebsolution/glory-home-eg-sub001/controllers/customer"
	productController "github.com/robowebsolution/glory-home-eg-sub001/controllers/product"
	projectController "github.com/robowebsolution/glory-home-eg-sub001/controllers/project"
	reviewController "github.com/robowebsolution/glory-home-eg-sub001/controllers/review"
	siteController "github.com/robowebsolution/glory-home-eg-sub001/controllers/site"
	videoController "github.com/robowebsolution/glory-home-eg-sub001/controllers/video"
	"github.com/robowebsolution/glory-home-eg-sub001/middleware"
)

// revalidateSeconds is the fixed edge-cache window for public reads.
const revalidateSeconds = 600

// SetupPublicRoutes registers all "/api/*" read endpoints plus the
// site-level robots/sitemap handlers. Reads carry the cache window;
// the contact form and keepalive probe do not.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")
	{
		cached := api.Group("", middleware.CacheFor(revalidateSeconds))
		{
			cached.GET("/products", productController.GetProducts(db))
			cached.GET("/products/:id", productController.GetProductByID(db))
			cached.GET("/categories", productController.GetAllCategories(db))
			cached.GET("/categories/:slug", productController.GetCategoryBySlug(db))
			cached.GET("/project-categories", projectController.GetProjectCategories(db))
			cached.GET("/projects", projectController.GetProjects(db))
			cached.GET("/projects/:id", projectController.GetProjectByID(db))
			cached.GET("/videos", videoController.GetVideos(db))
			cached.GET("/reviews", reviewController.GetReviews(db))
			cached.GET("/customers", customerController.GetCustomers(db))
		}

		api.POST("/contact", contactController.SubmitContact(db))
		api.GET("/keepalive", siteController.Keepalive())
	}

	r.GET("/robots.txt", siteController.RobotsTXT())
	r.GET("/sitemap.xml", siteController.Sitemap(db))
}
