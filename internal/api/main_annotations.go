// @title           promptsmith API
// @version         1.0
// @description     Rewrites a task into a prompt tailored to a target AI persona.
// @BasePath        /api
package api
