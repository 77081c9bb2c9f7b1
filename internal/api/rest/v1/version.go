package v1

// BasePath is the prefix of every JSON route
const BasePath = "/api"

// AdminPath is the prefix of the JSON routes that require a session
const AdminPath = BasePath + "/admin"
