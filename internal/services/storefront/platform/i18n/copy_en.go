package i18n

var english = map[string]string{
	"site.title":          "BurjMall - Online Shopping",
	"site.welcome":        "Welcome To BurjMall",
	"site.sign_in_prompt": "Hello, Sign in",
	"site.track_order":    "Track Your Order",
	"site.support":        "Support",
	"site.language":       "English",

	"header.all_categories": "All Categories",
	"header.search":         "I'm shopping for...",
	"header.search_button":  "Search",
	"header.wishlist":       "Wishlist",
	"header.cart":           "Cart",
	"header.greeting":       "Hi, %s",
	"header.login":          "Login",
	"header.register":       "Register",
	"header.logout":         "Logout",

	"nav.categories":    "CATEGORIES",
	"nav.brands":        "BRANDS",
	"nav.vendors":       "VENDORS",
	"nav.sell":          "SELL ON BURJMALL",
	"nav.free_shipping": "Free shipping",
	"nav.new_badge":     "NEW",

	"hero.banner_alt": "Banner %d",
	"hero.badge":      "Up to 40%% OFF",
	"hero.previous":   "Previous banner",
	"hero.next":       "Next banner",
	"hero.go_to":      "Show banner %d",

	"grid.loading":         "Loading products...",
	"grid.error_title":     "Error loading products",
	"grid.try_again":       "Try Again",
	"grid.empty":           "No products found",
	"grid.empty_in":        "No products found in %s",
	"grid.empty_hint":      "Try adjusting your search criteria",
	"grid.category_count":  "Showing %d products",
	"grid.loading_more":    "Loading more products...",
	"grid.end":             "You've reached the end of the product list",
	"grid.end_count":       "Showing %d of %d total products",
	"card.no_image":        "No Image",
	"card.add_to_cart":     "Add %s to cart",
	"category.all":         "All",
	"category.nav_label":   "Product categories",
	"promo.tailor":         "BEST TAILOR PROFESSIONAL TAILOR SERVICE",
	"promo.lorenzo":        "LORENZO HOUSE CLASSIC FURNITURE",
	"promo.property":       "LOOKING FOR PROPERTY?",
	"promo.property_brand": "GoFreehold",
	"footer.about":         "Your one-stop marketplace for coffee machines, furniture, collectibles and more.",
	"footer.customer_care": "Customer Care",
	"footer.help":          "Help Center",
	"footer.returns":       "Returns & Refunds",
	"footer.contact":       "Contact Us",
	"footer.rights":        "© BurjMall. All rights reserved.",

	"auth.login_title":           "Login",
	"auth.signup_title":          "Create Account",
	"auth.name":                  "Full Name",
	"auth.email":                 "Email",
	"auth.password":              "Password",
	"auth.password_confirmation": "Confirm Password",
	"auth.sign_in":               "Sign In",
	"auth.signing_in":            "Signing in...",
	"auth.create":                "Create Account",
	"auth.creating":              "Creating account...",
	"auth.no_account":            "Don't have an account?",
	"auth.create_one":            "Create one",
	"auth.have_account":          "Already have an account?",
	"auth.sign_in_link":          "Sign in",
	"auth.close":                 "Close",
	"notice.logged_in":           "Logged in successfully.",
	"notice.account_created":     "Account created successfully. Please login.",
	"notice.signed_up":           "Account created successfully.",
	"notice.logged_out":          "You have been logged out.",
	"error.login_failed":         "Login failed",
	"error.validation":           "Validation error",
	"error.name_required":        "Name is required",
	"error.email_invalid":        "Please enter a valid email address",
	"error.password_required":    "Password is required",
	"error.passwords_mismatch":   "Passwords do not match",
	"error.password_too_short":   "Password must be at least 8 characters long",
	"error.page_title":           "Something went wrong",
	"error.not_found_title":      "Page not found",
	"error.back_home":            "Back to shopping",
	"error.catalog_unavailable":  "Products are temporarily unavailable",
	"error.invalid_cursor":       "This product list has expired. Please reload the page.",
	"error.auth_unavailable":     "Sign-in is temporarily unavailable",
}
