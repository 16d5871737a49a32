package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sheshape-storefront/internal/domain"
	"sheshape-storefront/internal/upstream"
)

// passthrough proxies the non-checkout storefront surface to the backend
// with the caller's token attached by the auth middleware.
type passthrough struct {
	client *upstream.Client
}

func writeUpstreamError(c *gin.Context, err error) {
	var ide *domain.InvalidDataError
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		c.Status(http.StatusUnauthorized)
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"message": "conflict"})
	case errors.As(err, &ide):
		msg := ide.Message
		if msg == "" {
			msg = "invalid data"
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": msg})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"message": "upstream unavailable"})
	}
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return 0, false
	}
	return id, true
}

func respond(c *gin.Context, v interface{}, err error) {
	if err != nil {
		writeUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func queryInt(c *gin.Context, key string) int {
	n, _ := strconv.Atoi(c.Query(key))
	return n
}

func orderListParams(c *gin.Context) upstream.OrderListParams {
	return upstream.OrderListParams{
		Page:      queryInt(c, "page"),
		Size:      queryInt(c, "size"),
		SortBy:    c.Query("sortBy"),
		Direction: c.Query("direction"),
	}
}

// --- cart ---

func (p passthrough) getCart(c *gin.Context) {
	cart, err := p.client.Cart(c.Request.Context())
	if err != nil {
		writeUpstreamError(c, err)
		return
	}
	if cart == nil {
		cart = &domain.Cart{Items: []domain.CartItem{}}
	}
	c.JSON(http.StatusOK, cart)
}

func (p passthrough) cartCount(c *gin.Context) {
	count, err := p.client.CartCount(c.Request.Context())
	respond(c, gin.H{"count": count}, err)
}

func (p passthrough) validateCart(c *gin.Context) {
	v, err := p.client.ValidateCart(c.Request.Context())
	respond(c, v, err)
}

// --- products ---

func (p passthrough) listProducts(c *gin.Context) {
	page, err := p.client.Products(c.Request.Context(), productListParams(c))
	respond(c, page, err)
}

func (p passthrough) allProducts(c *gin.Context) {
	page, err := p.client.AllProducts(c.Request.Context(), productListParams(c))
	respond(c, page, err)
}

func productListParams(c *gin.Context) upstream.ProductListParams {
	return upstream.ProductListParams{
		Page:     queryInt(c, "page"),
		Size:     queryInt(c, "size"),
		Category: c.Query("category"),
		Search:   c.Query("search"),
		SortBy:   c.Query("sortBy"),
		SortDir:  c.Query("sortDir"),
	}
}

func (p passthrough) getProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	product, err := p.client.Product(c.Request.Context(), id)
	respond(c, product, err)
}

func (p passthrough) featuredProducts(c *gin.Context) {
	products, err := p.client.FeaturedProducts(c.Request.Context(), queryInt(c, "limit"))
	respond(c, products, err)
}

func (p passthrough) productCategories(c *gin.Context) {
	categories, err := p.client.ProductCategories(c.Request.Context())
	respond(c, categories, err)
}

func (p passthrough) createProduct(c *gin.Context) {
	var in domain.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "malformed request body"})
		return
	}
	product, err := p.client.CreateProduct(c.Request.Context(), in)
	respond(c, product, err)
}

func (p passthrough) updateProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in domain.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "malformed request body"})
		return
	}
	product, err := p.client.UpdateProduct(c.Request.Context(), id, in)
	respond(c, product, err)
}

func (p passthrough) deleteProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := p.client.DeleteProduct(c.Request.Context(), id); err != nil {
		writeUpstreamError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (p passthrough) activateProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	product, err := p.client.ActivateProduct(c.Request.Context(), id)
	respond(c, product, err)
}

func (p passthrough) deactivateProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	product, err := p.client.DeactivateProduct(c.Request.Context(), id)
	respond(c, product, err)
}

// --- orders ---

func (p passthrough) myOrders(c *gin.Context) {
	page, err := p.client.MyOrders(c.Request.Context(), orderListParams(c))
	respond(c, page, err)
}

func (p passthrough) allOrders(c *gin.Context) {
	page, err := p.client.AllOrders(c.Request.Context(), orderListParams(c))
	respond(c, page, err)
}

func (p passthrough) ordersByStatus(c *gin.Context) {
	status := domain.OrderStatus(c.Param("status"))
	page, err := p.client.OrdersByStatus(c.Request.Context(), status, orderListParams(c))
	respond(c, page, err)
}

func (p passthrough) getOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	order, err := p.client.Order(c.Request.Context(), id)
	respond(c, order, err)
}

func (p passthrough) orderByNumber(c *gin.Context) {
	order, err := p.client.OrderByNumber(c.Request.Context(), c.Param("number"))
	respond(c, order, err)
}

func (p passthrough) cancelOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	order, err := p.client.CancelOrder(c.Request.Context(), id)
	respond(c, order, err)
}

func (p passthrough) updateOrderStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var body struct {
		Status domain.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "malformed request body"})
		return
	}
	order, err := p.client.UpdateOrderStatus(c.Request.Context(), id, body.Status)
	respond(c, order, err)
}

func (p passthrough) updatePaymentStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var body struct {
		PaymentStatus domain.PaymentStatus `json:"paymentStatus" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "malformed request body"})
		return
	}
	order, err := p.client.UpdatePaymentStatus(c.Request.Context(), id, body.PaymentStatus)
	respond(c, order, err)
}

// --- users ---

func (p passthrough) me(c *gin.Context) {
	user, err := p.client.Me(c.Request.Context())
	respond(c, user, err)
}

func (p passthrough) listUsers(c *gin.Context) {
	users, err := p.client.Users(c.Request.Context())
	respond(c, users, err)
}

func (p passthrough) getUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	user, err := p.client.User(c.Request.Context(), id)
	respond(c, user, err)
}

func (p passthrough) updateUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in domain.UserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "malformed request body"})
		return
	}
	user, err := p.client.UpdateUser(c.Request.Context(), id, in)
	respond(c, user, err)
}

func (p passthrough) deleteUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := p.client.DeleteUser(c.Request.Context(), id); err != nil {
		writeUpstreamError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (p passthrough) listTrainers(c *gin.Context) {
	users, err := p.client.Trainers(c.Request.Context())
	respond(c, users, err)
}

func (p passthrough) listNutritionists(c *gin.Context) {
	users, err := p.client.Nutritionists(c.Request.Context())
	respond(c, users, err)
}

// --- blog ---

func blogListParams(c *gin.Context) upstream.BlogListParams {
	return upstream.BlogListParams{
		Page:     queryInt(c, "page"),
		Size:     queryInt(c, "size"),
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}
}

func (p passthrough) listBlogPosts(c *gin.Context) {
	page, err := p.client.BlogPosts(c.Request.Context(), blogListParams(c))
	respond(c, page, err)
}

func (p passthrough) allBlogPosts(c *gin.Context) {
	page, err := p.client.AllBlogPosts(c.Request.Context(), blogListParams(c))
	respond(c, page, err)
}

func (p passthrough) getBlogPost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	post, err := p.client.BlogPost(c.Request.Context(), id)
	respond(c, post, err)
}

func (p passthrough) createBlogPost(c *gin.Context) {
	var in domain.BlogPostInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "malformed request body"})
		return
	}
	post, err := p.client.CreateBlogPost(c.Request.Context(), in)
	respond(c, post, err)
}

func (p passthrough) updateBlogPost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in domain.BlogPostInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "malformed request body"})
		return
	}
	post, err := p.client.UpdateBlogPost(c.Request.Context(), id, in)
	respond(c, post, err)
}

func (p passthrough) deleteBlogPost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := p.client.DeleteBlogPost(c.Request.Context(), id); err != nil {
		writeUpstreamError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (p passthrough) publishBlogPost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	post, err := p.client.PublishBlogPost(c.Request.Context(), id)
	respond(c, post, err)
}

func (p passthrough) unpublishBlogPost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	post, err := p.client.UnpublishBlogPost(c.Request.Context(), id)
	respond(c, post, err)
}

// --- nutrition ---

func (p passthrough) listNutritionPlans(c *gin.Context) {
	plans, err := p.client.NutritionPlans(c.Request.Context())
	respond(c, plans, err)
}

func (p passthrough) allNutritionPlans(c *gin.Context) {
	plans, err := p.client.AllNutritionPlans(c.Request.Context())
	respond(c, plans, err)
}

func (p passthrough) getNutritionPlan(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	plan, err := p.client.NutritionPlan(c.Request.Context(), id)
	respond(c, plan, err)
}

func (p passthrough) createNutritionPlan(c *gin.Context) {
	var in domain.NutritionPlanInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "malformed request body"})
		return
	}
	plan, err := p.client.CreateNutritionPlan(c.Request.Context(), in)
	respond(c, plan, err)
}

func (p passthrough) updateNutritionPlan(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in domain.NutritionPlanInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "malformed request body"})
		return
	}
	plan, err := p.client.UpdateNutritionPlan(c.Request.Context(), id, in)
	respond(c, plan, err)
}

func (p passthrough) deleteNutritionPlan(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := p.client.DeleteNutritionPlan(c.Request.Context(), id); err != nil {
		writeUpstreamError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (p passthrough) activateNutritionPlan(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	plan, err := p.client.ActivateNutritionPlan(c.Request.Context(), id)
	respond(c, plan, err)
}

func (p passthrough) deactivateNutritionPlan(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	plan, err := p.client.DeactivateNutritionPlan(c.Request.Context(), id)
	respond(c, plan, err)
}

func (p passthrough) myNutritionPlans(c *gin.Context) {
	plans, err := p.client.MyNutritionPlans(c.Request.Context())
	respond(c, plans, err)
}

func (p passthrough) purchaseNutritionPlan(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	purchase, err := p.client.PurchaseNutritionPlan(c.Request.Context(), id)
	respond(c, purchase, err)
}

// --- gym programs ---

func (p passthrough) listGymPrograms(c *gin.Context) {
	programs, err := p.client.GymPrograms(c.Request.Context())
	respond(c, programs, err)
}

func (p passthrough) getGymProgram(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	program, err := p.client.GymProgram(c.Request.Context(), id)
	respond(c, program, err)
}

func (p passthrough) gymProgramSessions(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	sessions, err := p.client.GymProgramSessions(c.Request.Context(), id)
	respond(c, sessions, err)
}

func (p passthrough) myGymPrograms(c *gin.Context) {
	programs, err := p.client.MyGymPrograms(c.Request.Context())
	respond(c, programs, err)
}

func (p passthrough) purchaseGymProgram(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	purchase, err := p.client.PurchaseGymProgram(c.Request.Context(), id)
	respond(c, purchase, err)
}

// --- contact ---

type contactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

func (p passthrough) sendContactMessage(c *gin.Context) {
	var in contactRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "all contact fields are required"})
		return
	}
	msg := domain.ContactMessage{
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Message: in.Message,
	}
	if err := p.client.SendContactMessage(c.Request.Context(), msg); err != nil {
		writeUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message sent"})
}
