package cons

// Form types carried in webhook notifications. The values must match the
// `form_type` field sent by the Google Apps Script forwarder.
const (
	FormTypeBrgyCertificate = "brgy_certificate_request"
	FormTypeBusinessPermit  = "business_permit_request"
	FormTypeReportConcern   = "report_or_concern"
)

// Storage buckets for content images. One bucket per content type; objects
// are never shared between items.
const (
	BucketBulletinImages = "bulletin-images"
	BucketNewsImages     = "news-and-events-images"
)
