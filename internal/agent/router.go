package agent

// Route names the branch taken after a step.
type Route string

const (
	RouteError      Route = "erro"
	RouteTranscript Route = "transcricao"
	RouteSummary    Route = "resumo"
)

var routeTable = map[Status]Route{
	StatusError:              RouteError,
	StatusIDExtracted:        RouteTranscript,
	StatusTranscriptObtained: RouteSummary,
}

// Decide returns the route for the state's status. Unknown statuses,
// including the initial one, route to the error handler.
func Decide(state VideoState) Route {
	if r, ok := routeTable[state.Status]; ok {
		return r
	}
	return RouteError
}

type node string

const (
	nodeExtract    node = "extrair_video_id"
	nodeTranscript node = "obter_transcricao"
	nodeSummary    node = "gerar_resumo"
	nodeError      node = "erro"
)

var routeNodes = map[Route]node{
	RouteError:      nodeError,
	RouteTranscript: nodeTranscript,
	RouteSummary:    nodeSummary,
}

// next picks the node that runs after current produced state. The error
// handler and terminal statuses end the run.
func next(current node, state VideoState) (node, bool) {
	if current == nodeError || state.Status.Terminal() {
		return "", false
	}
	return routeNodes[Decide(state)], true
}
