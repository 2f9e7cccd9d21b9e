// Package customer contiene los casos de uso del registro de clientes y su crédito de tienda.
//
// Cada caso de uso es una operación orquestada: valida la entrada, carga el agregado desde
// el repositorio si hace falta, lo muta o lo construye, lo persiste y lo devuelve. Los errores
// se devuelven clasificados (ver internal/domain) y nunca se traducen aquí.
package customer
