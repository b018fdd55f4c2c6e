package catalog

import (
	"fmt"

	"portfolio-site/internal/domain/i18n"
)

const projectSummaryFields = `{
      _id,
      title,
      slug,
      locations,
      startYear,
      endYear,
      isOngoing
    }`

const allProjectsQuery = `*[_type == "project"] | order(order asc) {
    _id,
    _type,
    title,
    slug,
    startYear,
    endYear,
    isOngoing,
    locations,
    description,
    featuredImage,
    primaryMedium,
    collaborators,
    publications,
    isFeatured,
    "images": *[_type == "imageAsset" && references(^._id)] | order(order asc),
    order
  }`

func projectBySlugQuery(loc i18n.Locale) string {
	return fmt.Sprintf(`*[_type == "project" && slug.%s.current == $slug][0] {
    _id,
    _type,
    title,
    slug,
    startYear,
    endYear,
    isOngoing,
    locations,
    description,
    featuredImage,
    primaryMedium,
    collaborators,
    publications,
    isFeatured,
    "images": *[_type == "imageAsset" && references(^._id)] | order(order asc) {
      _id,
      image,
      caption,
      medium,
      filmFormat,
      tags,
      availableAsPrint,
      order
    },
    order
  }`, loc)
}

const featuredImagesQuery = `*[_type == "imageAsset" && isFeatured == true] {
    _id,
    image,
    caption,
    medium,
    filmFormat,
    project->` + projectSummaryFields + `
  }`

const allImagesQuery = `*[_type == "imageAsset"] | order(project->startYear desc, order asc) {
    _id,
    image,
    caption,
    medium,
    filmFormat,
    tags,
    availableAsPrint,
    project->` + projectSummaryFields + `
  }`

const siteSettingsQuery = `*[_type == "siteSettings"][0] {
    _id,
    siteName,
    aboutBio,
    aboutImage,
    contactEmail,
    socialLinks,
    exhibitions,
    awards,
    "featuredProjects": featuredProjects[]->  {
      _id,
      title,
      slug,
      startYear,
      endYear,
      isOngoing,
      locations,
      featuredImage,
      description
    }
  }`

const allProductsQuery = `*[_type == "product"] | order(_createdAt desc) {
    _id,
    title,
    slug,
    images,
    description,
    price,
    stripeProductId,
    relatedProject,
    inStock,
    variants
  }`

func productBySlugQuery(loc i18n.Locale) string {
	return fmt.Sprintf(`*[_type == "product" && slug.%s.current == $slug][0] {
    _id,
    title,
    slug,
    images,
    description,
    price,
    stripeProductId,
    relatedProject->{
      _id,
      title,
      slug
    },
    inStock,
    variants
  }`, loc)
}
