// Package factorymethod illustrates the Factory Method pattern.
//
// ShapeFactory declares a single Create method; each concrete factory decides
// which Shape it constructs. Callers hold a ShapeFactory and never name the
// concrete shape type.
package factorymethod
