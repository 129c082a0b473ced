package handlers

// HandlerBundle groups the endpoint handlers of both surfaces.
type HandlerBundle struct {
	App       *AppHandler
	Therapist *TherapistHandler
}
