// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

const sampleESearchXML = `<?xml version="1.0" encoding="UTF-8" ?>
<!DOCTYPE eSearchResult PUBLIC "-//NLM//DTD esearch 20060628//EN" "https://eutils.ncbi.nlm.nih.gov/eutils/dtd/20060628/esearch.dtd">
<eSearchResult>
  <Count>1234</Count>
  <RetMax>3</RetMax>
  <RetStart>0</RetStart>
  <IdList>
    <Id>38000003</Id>
    <Id>38000001</Id>
    <Id></Id>
    <Id>38000002</Id>
  </IdList>
  <QueryTranslation>"mrna vaccines"[MeSH Terms]</QueryTranslation>
</eSearchResult>`

const emptyESearchXML = `<?xml version="1.0" encoding="UTF-8" ?>
<eSearchResult><Count>0</Count><RetMax>0</RetMax><RetStart>0</RetStart><IdList/>
<ErrorList><PhraseNotFound>zzqqxx</PhraseNotFound></ErrorList></eSearchResult>`

const errorESearchXML = `<?xml version="1.0" encoding="UTF-8" ?>
<eSearchResult><ERROR>Invalid db name specified: pubmedx</ERROR></eSearchResult>`

// Article A has one Moderna author and one MIT author; article B is all
// Stanford; article C exercises markup, structured abstracts and dates.
const sampleEFetchXML = `<?xml version="1.0" ?>
<!DOCTYPE PubmedArticleSet PUBLIC "-//NLM//DTD PubMedArticle, 1st January 2024//EN" "https://dtd.nlm.nih.gov/ncbi/pubmed/out/pubmed_240101.dtd">
<PubmedArticleSet>
  <PubmedArticle>
    <MedlineCitation Status="MEDLINE" Owner="NLM">
      <PMID Version="1">38000001</PMID>
      <Article PubModel="Print">
        <Journal>
          <JournalIssue CitedMedium="Internet">
            <PubDate><Year>2023</Year><Month>Nov</Month><Day>02</Day></PubDate>
          </JournalIssue>
        </Journal>
        <ArticleTitle>Durability of mRNA vaccine responses.</ArticleTitle>
        <Abstract>
          <AbstractText>We report durability. Contact ada@modernatx.com.</AbstractText>
        </Abstract>
        <AuthorList CompleteYN="Y">
          <Author ValidYN="Y">
            <LastName>Lovelace</LastName>
            <ForeName>Ada</ForeName>
            <AffiliationInfo><Affiliation>Moderna Therapeutics</Affiliation></AffiliationInfo>
          </Author>
          <Author ValidYN="Y">
            <LastName>Turing</LastName>
            <ForeName>Alan</ForeName>
            <AffiliationInfo><Affiliation>Dept. of Biology, MIT</Affiliation></AffiliationInfo>
          </Author>
        </AuthorList>
      </Article>
      <CommentsCorrectionsList>
        <CommentsCorrections RefType="Cites"><PMID Version="1">11111111</PMID></CommentsCorrections>
      </CommentsCorrectionsList>
    </MedlineCitation>
  </PubmedArticle>
  <PubmedArticle>
    <MedlineCitation Status="MEDLINE" Owner="NLM">
      <PMID Version="1">38000002</PMID>
      <Article PubModel="Print">
        <Journal><JournalIssue><PubDate><Year>2022</Year></PubDate></JournalIssue></Journal>
        <ArticleTitle>Academic only.</ArticleTitle>
        <AuthorList>
          <Author><LastName>Stone</LastName><ForeName>Sam</ForeName>
            <AffiliationInfo><Affiliation>Stanford University</Affiliation></AffiliationInfo></Author>
          <Author><LastName>Reed</LastName><ForeName>Ria</ForeName>
            <AffiliationInfo><Affiliation>Stanford University</Affiliation></AffiliationInfo></Author>
        </AuthorList>
      </Article>
    </MedlineCitation>
  </PubmedArticle>
  <PubmedArticle>
    <MedlineCitation Status="MEDLINE" Owner="NLM">
      <PMID Version="1">38000003</PMID>
      <Article PubModel="Print">
        <Journal><JournalIssue><PubDate><MedlineDate>2021 Jun-Jul</MedlineDate></PubDate></JournalIssue></Journal>
        <ArticleTitle>Role of <i>KRAS</i> G12C&nbsp;inhibitors</ArticleTitle>
        <Abstract>
          <AbstractText Label="BACKGROUND">Background text.</AbstractText>
          <AbstractText Label="METHODS">Methods text; reach us at lab@example.org</AbstractText>
        </Abstract>
        <AuthorList>
          <Author><CollectiveName>KRAS Consortium</CollectiveName></Author>
          <Author><LastName>Meyer</LastName>
            <AffiliationInfo><Affiliation>Amgen Inc., Thousand Oaks</Affiliation></AffiliationInfo>
            <AffiliationInfo><Affiliation>Harvard University</Affiliation></AffiliationInfo></Author>
          <Author><LastName>Meyer</LastName>
            <AffiliationInfo><Affiliation>Amgen Inc., Thousand Oaks</Affiliation></AffiliationInfo></Author>
        </AuthorList>
      </Article>
    </MedlineCitation>
  </PubmedArticle>
  <PubmedArticle>
    <MedlineCitation Status="MEDLINE" Owner="NLM">
      <Article PubModel="Print">
        <AuthorList>
          <Author><LastName>Nobody</LastName><ForeName>No</ForeName></Author>
        </AuthorList>
      </Article>
    </MedlineCitation>
  </PubmedArticle>
</PubmedArticleSet>`
