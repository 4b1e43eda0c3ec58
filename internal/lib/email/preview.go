package email

// PreviewData contains sample template data for local preview/testing,
// keyed by template name.
var PreviewData = map[string]map[string]string{
	"welcome": {
		"UserName": "Ada",
	},
	"application_received": {
		"StudentName": "Ada",
		"ListingID":   "8f14e45f-ceea-4672-9c7a-2f4d41d4c8aa",
	},
}
