package echo

import "context"

// Hello returns the fixed greeting. The response never varies; clients use it
// as a liveness probe for the GraphQL layer itself.
func (s *Service) Hello(_ context.Context) string {
	return Greeting
}
