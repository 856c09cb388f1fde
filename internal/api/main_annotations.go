// @title           bookmarkd API
// @version         1.0
// @description     Bookmark list service for the EconPulse dashboard. Authenticate with an OIDC ID token.
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerToken
// @in              header
// @name            Authorization
// @description     Type "Bearer" followed by a space and your OIDC ID token.
package api
