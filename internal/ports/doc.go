// Package ports defines interfaces between layers in the hexagonal architecture.
// The service port is implemented by the application layer and called by inbound
// adapters (HTTP handlers, MCP tools). Client ports are implemented by outbound
// adapters (the Asana and Planner clients, the assignee directory) and called
// by the application layer.
package ports
